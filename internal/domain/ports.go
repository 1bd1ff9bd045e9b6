package domain

import (
	"context"
	"time"
)

// SessionStore persists the session record (credential + identity)
// across process runs. Load returns (nil, nil) when no session is
// stored. Save and Clear replace or remove the whole record atomically;
// token and identity are never written separately.
type SessionStore interface {
	Load() (*Session, error)
	Save(session *Session) error
	Clear() error
}

// TaskQuery selects the server-side scoping of a task list fetch.
// All fields are optional; the server additionally scopes employees to
// their own tasks regardless of the query.
type TaskQuery struct {
	Status     Status
	Priority   Priority
	AssignedTo string
}

// TaskCreate carries the fields for creating a task.
// Fields are ordered to minimize memory padding.
type TaskCreate struct {
	Deadline    *time.Time
	Title       string
	Description string
	Priority    Priority
	AssignedTo  string
}

// TaskUpdate carries the fields for editing a task.
// Nil/empty fields are omitted from the request body.
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *Priority
	Deadline    *time.Time
	AssignedTo  *string
}

// UserUpdate carries the fields for editing a user.
type UserUpdate struct {
	Name  *string
	Email *string
	Role  *Role
}

// Gateway wraps all outbound calls to the remote service. Every request
// is augmented with the current bearer credential if one exists. Failed
// calls return a tagged *APIError; the gateway itself performs no
// session side effects.
type Gateway interface {
	// SetToken replaces the credential attached to subsequent requests.
	// An empty token sends unauthenticated requests.
	SetToken(token string)

	Login(ctx context.Context, email, password string) (*Session, error)
	Register(ctx context.Context, name, email, password string) (*Session, error)
	Me(ctx context.Context) (*User, error)

	ListUsers(ctx context.Context) ([]*User, error)
	UpdateUser(ctx context.Context, id string, in UserUpdate) (*User, error)
	SetUserRole(ctx context.Context, id string, role Role) error
	ToggleUserActive(ctx context.Context, id string) (bool, string, error)
	DeleteUser(ctx context.Context, id string) error

	ListTasks(ctx context.Context, q TaskQuery) ([]*Task, error)
	GetTask(ctx context.Context, id string) (*Task, error)
	CreateTask(ctx context.Context, in TaskCreate) (*Task, error)
	UpdateTask(ctx context.Context, id string, in TaskUpdate) (*Task, error)
	SetTaskStatus(ctx context.Context, id string, status Status) (*Task, error)
	DeleteTask(ctx context.Context, id string) error

	DashboardStats(ctx context.Context) (*DashboardStats, error)
	Performance(ctx context.Context) ([]*PerformanceEntry, error)

	Seed(ctx context.Context) (string, error)
	Health(ctx context.Context) error
}

// TokenInspector reads claims out of a stored credential without
// verifying its signature. Display only; the server remains the
// authority on validity.
type TokenInspector interface {
	// Expiry returns the token's expiry claim, if one is present.
	Expiry(token string) (time.Time, bool)
}

// Logger writes application log entries.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
