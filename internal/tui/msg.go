package tui

import "github.com/DAKSHSHARMA2901/officeemergent/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgSessionSettled is sent when the startup session restoration has
// settled into a definite logged-in or logged-out state.
type MsgSessionSettled struct {
	State domain.SessionState
}

func (MsgSessionSettled) sealed() {}

// MsgLoggedIn is sent after a successful login or registration.
type MsgLoggedIn struct {
	User *domain.User
}

func (MsgLoggedIn) sealed() {}

// MsgLoggedOut is sent after the session has been discarded.
type MsgLoggedOut struct{}

func (MsgLoggedOut) sealed() {}

// MsgTasksLoaded is sent when the task collection has been fetched.
type MsgTasksLoaded struct {
	Tasks []*domain.Task
}

func (MsgTasksLoaded) sealed() {}

// MsgUsersLoaded is sent when the user collection has been fetched.
type MsgUsersLoaded struct {
	Users []*domain.User
}

func (MsgUsersLoaded) sealed() {}

// MsgStatsLoaded is sent when the dashboard counters have been fetched.
type MsgStatsLoaded struct {
	Stats *domain.DashboardStats
}

func (MsgStatsLoaded) sealed() {}

// MsgTaskMutated is sent after any task write succeeds. The handler
// refetches the whole collection rather than patching it locally.
type MsgTaskMutated struct{}

func (MsgTaskMutated) sealed() {}

// MsgUserMutated is sent after any user write succeeds.
type MsgUserMutated struct{}

func (MsgUserMutated) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the current error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}
