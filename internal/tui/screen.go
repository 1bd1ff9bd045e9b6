// Package tui provides the terminal user interface for office.
package tui

import "github.com/DAKSHSHARMA2901/officeemergent/internal/domain"

// Screen represents the view currently shown.
type Screen int

const (
	ScreenLogin     Screen = iota // Login form
	ScreenRegister                // Registration form
	ScreenDashboard               // Counters overview
	ScreenTasks                   // Task list
	ScreenUsers                   // User administration
)

// String returns the string representation of the screen.
func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenRegister:
		return "register"
	case ScreenDashboard:
		return "dashboard"
	case ScreenTasks:
		return "tasks"
	case ScreenUsers:
		return "users"
	default:
		return "unknown"
	}
}

// Route returns the guard route backing this screen.
func (s Screen) Route() domain.Route {
	switch s {
	case ScreenLogin:
		return domain.RouteLogin
	case ScreenRegister:
		return domain.RouteRegister
	case ScreenTasks:
		return domain.RouteTasks
	case ScreenUsers:
		return domain.RouteUsers
	default:
		return domain.RouteDashboard
	}
}

// screenForRoute maps a guard route back to its screen.
func screenForRoute(route domain.Route) Screen {
	switch route.Name {
	case domain.RouteLogin.Name:
		return ScreenLogin
	case domain.RouteRegister.Name:
		return ScreenRegister
	case domain.RouteTasks.Name:
		return ScreenTasks
	case domain.RouteUsers.Name:
		return ScreenUsers
	default:
		return ScreenDashboard
	}
}

// IsForm returns true if the screen accepts text input.
func (s Screen) IsForm() bool {
	return s == ScreenLogin || s == ScreenRegister
}
