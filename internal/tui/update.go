package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// clearErrorAfter returns a command that clears the error banner later.
func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return MsgClearError{}
	})
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.session.Loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case Msg:
		return m.handleMsg(msg)
	}

	return m, nil
}

// handleMsg handles application messages.
func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgSessionSettled:
		m.session = msg.State
		if m.session.LoggedIn() {
			return m, m.navigate(domain.RouteDashboard)
		}
		return m, m.navigate(domain.RouteLogin)

	case MsgLoggedIn:
		m.session = domain.SessionState{User: msg.User}
		m.passwordInput.SetValue("")
		m.err = nil
		return m, m.navigate(domain.RouteDashboard)

	case MsgLoggedOut:
		m.session = domain.SessionState{}
		m.tasks = nil
		m.users = nil
		m.stats = nil
		return m, m.navigate(domain.RouteLogin)

	case MsgTasksLoaded:
		m.tasks = msg.Tasks
		m.clampCursor(len(m.visibleTasks()))
		return m, nil

	case MsgUsersLoaded:
		m.users = msg.Users
		m.clampCursor(len(m.users))
		return m, nil

	case MsgStatsLoaded:
		m.stats = msg.Stats
		return m, nil

	case MsgTaskMutated:
		// Refetch instead of patching the local copy.
		return m, m.loadTasks()

	case MsgUserMutated:
		return m, m.loadUsers()

	case MsgError:
		return m.handleError(msg.Err)

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// handleError is the one place in the TUI that reacts to a rejected
// credential: it clears the session everywhere and routes to login. All
// other errors are shown in place.
func (m *Model) handleError(err error) (tea.Model, tea.Cmd) {
	if domain.IsAuthInvalid(err) {
		m.container.Gateway.SetToken("")
		_ = m.container.Sessions.Clear()
		m.session = domain.SessionState{}
		m.tasks = nil
		m.users = nil
		m.stats = nil
		m.err = err
		return m, tea.Batch(m.navigate(domain.RouteLogin), clearErrorAfter(5*time.Second))
	}
	m.err = err
	return m, clearErrorAfter(5 * time.Second)
}

// navigate runs the route guard for the requested route and applies its
// verdict, loading whatever the landing screen needs.
func (m *Model) navigate(route domain.Route) tea.Cmd {
	switch domain.Decide(m.session, route) {
	case domain.DecisionPending:
		return nil
	case domain.DecisionLogin:
		route = domain.RouteLogin
	case domain.DecisionDashboard:
		route = domain.RouteDashboard
	case domain.DecisionAllow:
	}

	m.screen = screenForRoute(route)
	m.cursor = 0
	m.filtering = false

	switch m.screen {
	case ScreenDashboard:
		return m.loadStats()
	case ScreenTasks:
		return m.loadTasks()
	case ScreenUsers:
		return m.loadUsers()
	case ScreenLogin, ScreenRegister:
		m.focusField(0)
	}
	return nil
}

// handleKey handles keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits; plain q only outside text inputs.
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Quit) && !m.typing() {
		return m, tea.Quit
	}

	if m.session.Loading {
		return m, nil
	}

	if m.screen.IsForm() {
		return m.handleFormKey(msg)
	}
	if m.filtering {
		return m.handleFilterKey(msg)
	}
	return m.handleListKey(msg)
}

// typing reports whether a text input currently has focus.
func (m *Model) typing() bool {
	return m.screen.IsForm() || m.filtering
}

// handleFormKey handles input on the login and register screens.
func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Tab):
		m.focusField(m.focus + 1)
		return m, nil

	case key.Matches(msg, m.keys.Register):
		if m.screen == ScreenLogin {
			return m, m.navigate(domain.RouteRegister)
		}
		return m, m.navigate(domain.RouteLogin)

	case key.Matches(msg, m.keys.Enter):
		email := m.emailInput.Value()
		password := m.passwordInput.Value()
		if m.screen == ScreenRegister {
			return m, m.register(m.nameInput.Value(), email, password)
		}
		return m, m.login(email, password)
	}

	var cmd tea.Cmd
	switch m.focusedField() {
	case &m.nameInput:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case &m.emailInput:
		m.emailInput, cmd = m.emailInput.Update(msg)
	case &m.passwordInput:
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

// focusedField returns the input that currently has focus.
func (m *Model) focusedField() *textinput.Model {
	fields := m.fields()
	return fields[m.focus%len(fields)]
}

// fields returns the focusable inputs of the current form.
func (m *Model) fields() []*textinput.Model {
	if m.screen == ScreenRegister {
		return []*textinput.Model{&m.nameInput, &m.emailInput, &m.passwordInput}
	}
	return []*textinput.Model{&m.emailInput, &m.passwordInput}
}

// focusField moves focus to field i, wrapping around.
func (m *Model) focusField(i int) {
	fields := m.fields()
	m.focus = i % len(fields)
	for j, f := range fields {
		if j == m.focus {
			f.Focus()
		} else {
			f.Blur()
		}
	}
}

// handleFilterKey handles input while the task filter is active.
func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.clampCursor(len(m.visibleTasks()))
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.clampCursor(len(m.visibleTasks()))
	return m, cmd
}

// handleListKey handles input on the dashboard, task and user screens.
func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Dashboard):
		return m, m.navigate(domain.RouteDashboard)

	case key.Matches(msg, m.keys.Tasks):
		return m, m.navigate(domain.RouteTasks)

	case key.Matches(msg, m.keys.Users):
		return m, m.navigate(domain.RouteUsers)

	case key.Matches(msg, m.keys.Logout):
		return m, m.logout()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.navigate(m.screen.Route())

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.cursor++
		switch m.screen {
		case ScreenTasks:
			m.clampCursor(len(m.visibleTasks()))
		case ScreenUsers:
			m.clampCursor(len(m.users))
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		if m.screen == ScreenTasks {
			m.filtering = true
			m.filterInput.Focus()
		}
		return m, nil

	case key.Matches(msg, m.keys.Advance):
		if m.screen == ScreenTasks {
			if task := m.SelectedTask(); m.canAdvance(task) {
				return m, m.advanceTask(task.ID)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if m.screen == ScreenUsers {
			if user := m.SelectedUser(); user != nil {
				return m, m.toggleUser(user.ID)
			}
		}
		return m, nil
	}

	return m, nil
}

// canAdvance reports whether the advance action applies to the task:
// a successor must exist and the user must be allowed to move it.
func (m *Model) canAdvance(task *domain.Task) bool {
	return task != nil && task.CanAdvance() && m.session.User.CanEditTask(task)
}

// clampCursor keeps the cursor inside the list bounds.
func (m *Model) clampCursor(n int) {
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
