package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/app"
	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
	"github.com/DAKSHSHARMA2901/officeemergent/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	stats     *domain.DashboardStats
	err       error

	// State (slices - contain pointers)
	tasks []*domain.Task // Fetched collection, unfiltered
	users []*domain.User

	// Session state the route guard reads
	session domain.SessionState

	// Components
	keys    KeyMap
	styles  Styles
	spinner spinner.Model

	// Input state (large structs)
	nameInput     textinput.Model
	emailInput    textinput.Model
	passwordInput textinput.Model
	filterInput   textinput.Model

	// Numeric state (smaller types last)
	screen    Screen
	width     int
	height    int
	cursor    int
	focus     int
	filtering bool
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ni := textinput.New()
	ni.Placeholder = "Name"
	ni.CharLimit = 100

	ei := textinput.New()
	ei.Placeholder = "Email"
	ei.CharLimit = 200
	ei.Focus()

	pi := textinput.New()
	pi.Placeholder = "Password"
	pi.CharLimit = 200
	pi.EchoMode = textinput.EchoPassword

	fi := textinput.New()
	fi.Placeholder = "Filter tasks..."
	fi.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		container: c,
		// Session restoration is in flight until MsgSessionSettled.
		session:       domain.SessionState{Loading: true},
		screen:        ScreenLogin,
		keys:          DefaultKeyMap(),
		styles:        DefaultStyles(),
		spinner:       sp,
		nameInput:     ni,
		emailInput:    ei,
		passwordInput: pi,
		filterInput:   fi,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.restoreSession(),
		m.spinner.Tick,
	)
}

// restoreSession returns a command that settles the persisted session.
func (m *Model) restoreSession() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.RestoreSessionUseCase().Execute(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgSessionSettled{State: out.State}
	}
}

// loadTasks returns a command that fetches the full task collection.
// Filtering happens locally on the fetched copy.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks}
	}
}

// loadUsers returns a command that fetches the user collection.
func (m *Model) loadUsers() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListUsersUseCase().Execute(context.Background(), usecase.ListUsersInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgUsersLoaded{Users: out.Users}
	}
}

// loadStats returns a command that fetches the dashboard counters.
func (m *Model) loadStats() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.DashboardStatsUseCase().Execute(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStatsLoaded{Stats: out.Stats}
	}
}

// login returns a command that submits the login form.
func (m *Model) login(email, password string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.LoginUseCase().Execute(context.Background(), usecase.LoginInput{
			Email:    email,
			Password: password,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgLoggedIn{User: out.User}
	}
}

// register returns a command that submits the registration form.
func (m *Model) register(name, email, password string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.RegisterUseCase().Execute(context.Background(), usecase.RegisterInput{
			Name:     name,
			Email:    email,
			Password: password,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgLoggedIn{User: out.User}
	}
}

// logout returns a command that discards the session.
func (m *Model) logout() tea.Cmd {
	return func() tea.Msg {
		m.container.LogoutUseCase().Execute(context.Background())
		return MsgLoggedOut{}
	}
}

// advanceTask returns a command that advances a task one status step.
func (m *Model) advanceTask(taskID string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.AdvanceTaskUseCase().Execute(context.Background(), usecase.AdvanceTaskInput{TaskID: taskID})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskMutated{}
	}
}

// toggleUser returns a command that flips a user's active flag.
func (m *Model) toggleUser(userID string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.ToggleUserActiveUseCase().Execute(context.Background(), usecase.ToggleUserActiveInput{UserID: userID})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgUserMutated{}
	}
}

// visibleTasks applies the local filter to the fetched collection.
func (m *Model) visibleTasks() []*domain.Task {
	filter := domain.TaskFilter{Search: m.filterInput.Value()}
	return filter.Apply(m.tasks)
}

// SelectedTask returns the task under the cursor, or nil.
func (m *Model) SelectedTask() *domain.Task {
	visible := m.visibleTasks()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return nil
	}
	return visible[m.cursor]
}

// SelectedUser returns the user under the cursor, or nil.
func (m *Model) SelectedUser() *domain.User {
	if m.cursor < 0 || m.cursor >= len(m.users) {
		return nil
	}
	return m.users[m.cursor]
}

// Screen exposes the current screen for tests.
func (m *Model) Screen() Screen {
	return m.screen
}

// Session exposes the guard state for tests.
func (m *Model) Session() domain.SessionState {
	return m.session
}
