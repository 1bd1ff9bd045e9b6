package tui

import (
	"fmt"
	"strings"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// View renders the current screen.
func (m *Model) View() string {
	if m.session.Loading {
		return m.styles.App.Render(fmt.Sprintf("%s restoring session...", m.spinner.View()))
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	switch m.screen {
	case ScreenLogin, ScreenRegister:
		b.WriteString(m.formView())
	case ScreenDashboard:
		b.WriteString(m.dashboardView())
	case ScreenTasks:
		b.WriteString(m.tasksView())
	case ScreenUsers:
		b.WriteString(m.usersView())
	}

	if m.err != nil {
		// Server errors carry their detail; local validation and store
		// errors have no API message and fall back to the error text.
		msg := domain.APIMessage(m.err)
		if msg == "" {
			msg = m.err.Error()
		}
		b.WriteString("\n\n")
		b.WriteString(m.styles.Error.Render(msg))
	}

	b.WriteString("\n\n")
	b.WriteString(m.helpView())
	return m.styles.App.Render(b.String())
}

// headerView renders the title bar.
func (m *Model) headerView() string {
	title := m.styles.Title.Render("office")
	if !m.session.LoggedIn() {
		return title
	}
	identity := fmt.Sprintf("%s (%s)", m.session.User.Name, m.session.User.Role.Display())
	return title + "  " + m.styles.Muted.Render(identity) + "  " + m.styles.Muted.Render("["+m.screen.String()+"]")
}

// formView renders the login or registration form.
func (m *Model) formView() string {
	var b strings.Builder
	if m.screen == ScreenRegister {
		b.WriteString(m.styles.Header.Render("Create an account"))
		b.WriteString("\n\n")
		b.WriteString(m.nameInput.View())
		b.WriteString("\n")
	} else {
		b.WriteString(m.styles.Header.Render("Log in"))
		b.WriteString("\n\n")
	}
	b.WriteString(m.emailInput.View())
	b.WriteString("\n")
	b.WriteString(m.passwordInput.View())
	return b.String()
}

// dashboardView renders the counters overview.
func (m *Model) dashboardView() string {
	if m.stats == nil {
		return m.styles.Muted.Render("loading...")
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Tasks"))
	b.WriteString("\n")
	rows := []struct {
		label string
		value int
	}{
		{"Total", m.stats.TotalTasks},
		{"Pending", m.stats.Pending},
		{"In progress", m.stats.InProgress},
		{"Review", m.stats.Review},
		{"Completed", m.stats.Completed},
		{"Overdue", m.stats.Overdue},
	}
	for _, row := range rows {
		b.WriteString(m.styles.Label.Render(row.label))
		b.WriteString(m.styles.Value.Render(fmt.Sprintf("%d", row.value)))
		b.WriteString("\n")
	}

	if m.stats.TotalUsers > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Header.Render("Users"))
		b.WriteString("\n")
		b.WriteString(m.styles.Label.Render("Total"))
		b.WriteString(fmt.Sprintf("%d", m.stats.TotalUsers))
		b.WriteString("\n")
		b.WriteString(m.styles.Label.Render("Active"))
		b.WriteString(fmt.Sprintf("%d", m.stats.ActiveUsers))
		b.WriteString("\n")
		b.WriteString(m.styles.Label.Render("Inactive"))
		b.WriteString(fmt.Sprintf("%d", m.stats.InactiveUsers))
	}
	return b.String()
}

// tasksView renders the task list with the local filter applied.
func (m *Model) tasksView() string {
	var b strings.Builder
	if m.filtering || m.filterInput.Value() != "" {
		b.WriteString(m.filterInput.View())
		b.WriteString("\n\n")
	}

	visible := m.visibleTasks()
	if len(visible) == 0 {
		b.WriteString(m.styles.Muted.Render("no tasks"))
		return b.String()
	}

	now := m.container.Clock.Now()
	for i, task := range visible {
		cursor := "  "
		titleStyle := m.styles.Value
		if i == m.cursor {
			cursor = "> "
			titleStyle = m.styles.Selected
		}

		deadline := ""
		if task.Deadline != nil {
			deadline = " due " + task.Deadline.Local().Format("2006-01-02")
			if task.IsOverdue(now) {
				deadline = m.styles.Overdue.Render(deadline + " (overdue)")
			} else {
				deadline = m.styles.Muted.Render(deadline)
			}
		}

		assignee := ""
		if task.AssignedToName != "" {
			assignee = m.styles.Muted.Render(" @" + task.AssignedToName)
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s%s%s\n",
			cursor,
			m.styles.StatusStyle(task.Status).Render(fmt.Sprintf("%-11s", task.Status.Display())),
			m.styles.PriorityStyle(task.Priority).Render(fmt.Sprintf("%-8s", task.Priority.Display())),
			titleStyle.Render(task.Title),
			assignee,
			deadline,
		))
	}
	return b.String()
}

// usersView renders the user administration list.
func (m *Model) usersView() string {
	if len(m.users) == 0 {
		return m.styles.Muted.Render("no users")
	}

	var b strings.Builder
	for i, user := range m.users {
		cursor := "  "
		nameStyle := m.styles.Value
		if i == m.cursor {
			cursor = "> "
			nameStyle = m.styles.Selected
		}

		state := ""
		if !user.IsActive {
			state = m.styles.Error.Render(" inactive")
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s%s\n",
			cursor,
			nameStyle.Render(fmt.Sprintf("%-20s", user.Name)),
			m.styles.Muted.Render(fmt.Sprintf("%-30s", user.Email)),
			user.Role.Display(),
			state,
		))
	}
	return b.String()
}

// helpView renders the context help line.
func (m *Model) helpView() string {
	switch {
	case m.screen.IsForm():
		if m.screen == ScreenRegister {
			return m.styles.Help.Render("tab: next field • enter: register • ctrl+r: back to login • ctrl+c: quit")
		}
		return m.styles.Help.Render("tab: next field • enter: log in • ctrl+r: register • ctrl+c: quit")
	case m.filtering:
		return m.styles.Help.Render("type to filter • enter: apply • esc: clear")
	case m.screen == ScreenTasks:
		help := "d/t/u: screens • /: filter"
		if m.canAdvance(m.SelectedTask()) {
			help += " • a: advance"
		}
		return m.styles.Help.Render(help + " • r: refresh • L: logout • q: quit")
	case m.screen == ScreenUsers:
		return m.styles.Help.Render("d/t/u: screens • x: toggle active • r: refresh • L: logout • q: quit")
	default:
		return m.styles.Help.Render("d/t/u: screens • r: refresh • L: logout • q: quit")
	}
}
