// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"errors"
	"time"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// ErrUnexpectedCall is returned by mock methods a test did not arm.
var ErrUnexpectedCall = errors.New("unexpected gateway call")

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockSessionStore is an in-memory test double for domain.SessionStore.
type MockSessionStore struct {
	Session  *domain.Session
	LoadErr  error
	SaveErr  error
	ClearErr error
	Cleared  bool
}

// Load returns the stored session, or nil if absent.
func (m *MockSessionStore) Load() (*domain.Session, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Session, nil
}

// Save stores the session.
func (m *MockSessionStore) Save(session *domain.Session) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Session = session
	return nil
}

// Clear removes the stored session.
func (m *MockSessionStore) Clear() error {
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.Session = nil
	m.Cleared = true
	return nil
}

// MockGateway is a test double for domain.Gateway. Tests arm only the
// functions they expect; anything else fails with ErrUnexpectedCall.
type MockGateway struct {
	LoginFn        func(email, password string) (*domain.Session, error)
	RegisterFn     func(name, email, password string) (*domain.Session, error)
	MeFn           func() (*domain.User, error)
	ListUsersFn    func() ([]*domain.User, error)
	UpdateUserFn   func(id string, in domain.UserUpdate) (*domain.User, error)
	SetUserRoleFn  func(id string, role domain.Role) error
	ToggleActiveFn func(id string) (bool, string, error)
	DeleteUserFn   func(id string) error
	ListTasksFn    func(q domain.TaskQuery) ([]*domain.Task, error)
	GetTaskFn      func(id string) (*domain.Task, error)
	CreateTaskFn   func(in domain.TaskCreate) (*domain.Task, error)
	UpdateTaskFn   func(id string, in domain.TaskUpdate) (*domain.Task, error)
	SetStatusFn    func(id string, status domain.Status) (*domain.Task, error)
	DeleteTaskFn   func(id string) error
	StatsFn        func() (*domain.DashboardStats, error)
	PerformanceFn  func() ([]*domain.PerformanceEntry, error)
	SeedFn         func() (string, error)
	HealthFn       func() error

	Tokens []string // every SetToken call, in order
}

// SetToken records the credential handed to the transport.
func (m *MockGateway) SetToken(token string) {
	m.Tokens = append(m.Tokens, token)
}

// LastToken returns the most recently set credential, or "".
func (m *MockGateway) LastToken() string {
	if len(m.Tokens) == 0 {
		return ""
	}
	return m.Tokens[len(m.Tokens)-1]
}

func (m *MockGateway) Login(_ context.Context, email, password string) (*domain.Session, error) {
	if m.LoginFn == nil {
		return nil, ErrUnexpectedCall
	}
	return m.LoginFn(email, password)
}

func (m *MockGateway) Register(_ context.Context, name, email, password string) (*domain.Session, error) {
	if m.RegisterFn == nil {
		return nil, ErrUnexpectedCall
	}
	return m.RegisterFn(name, email, password)
}

func (m *MockGateway) Me(_ context.Context) (*domain.User, error) {
	if m.MeFn == nil {
		return nil, ErrUnexpectedCall
	}
	return m.MeFn()
}

func (m *MockGateway) ListUsers(_ context.Context) ([]*domain.User, error) {
	if m.ListUsersFn == nil {
		return nil, ErrUnexpectedCall
	}
	return m.ListUsersFn()
}

func (m *MockGateway) UpdateUser(_ context.Context, id string, in domain.UserUpdate) (*domain.User, error) {
	if m.UpdateUserFn == nil {
		return nil, ErrUnexpectedCall
	}
	return m.UpdateUserFn(id, in)
}

func (m *MockGateway) SetUserRole(_ context.Context, id string, role domain.Role) error {
	if m.SetUserRoleFn == nil {
		return ErrUnexpectedCall
	}
	return m.SetUserRoleFn(id, role)
}

func (m *MockGateway) ToggleUserActive(_ context.Context, id string) (bool, string, error) {
	if m.ToggleActiveFn == nil {
		return false, "", ErrUnexpectedCall
	}
	return m.ToggleActiveFn(id)
}

func (m *MockGateway) DeleteUser(_ context.Context, id string) error {
	if m.DeleteUserFn == nil {
		return ErrUnexpectedCall
	}
	return m.DeleteUserFn(id)
}

func (m *MockGateway) ListTasks(_ context.Context, q domain.TaskQuery) ([]*domain.Task, error) {
	if m.ListTasksFn == nil {
		return nil, ErrUnexpectedCall
	}
	return m.ListTasksFn(q)
}

func (m *MockGateway) GetTask(_ context.Context, id string) (*domain.Task, error) {
	if m.GetTaskFn == nil {
		return nil, ErrUnexpectedCall
	}
	return m.GetTaskFn(id)
}

func (m *MockGateway) CreateTask(_ context.Context, in domain.TaskCreate) (*domain.Task, error) {
	if m.CreateTaskFn == nil {
		return nil, ErrUnexpectedCall
	}
	return m.CreateTaskFn(in)
}

func (m *MockGateway) UpdateTask(_ context.Context, id string, in domain.TaskUpdate) (*domain.Task, error) {
	if m.UpdateTaskFn == nil {
		return nil, ErrUnexpectedCall
	}
	return m.UpdateTaskFn(id, in)
}

func (m *MockGateway) SetTaskStatus(_ context.Context, id string, status domain.Status) (*domain.Task, error) {
	if m.SetStatusFn == nil {
		return nil, ErrUnexpectedCall
	}
	return m.SetStatusFn(id, status)
}

func (m *MockGateway) DeleteTask(_ context.Context, id string) error {
	if m.DeleteTaskFn == nil {
		return ErrUnexpectedCall
	}
	return m.DeleteTaskFn(id)
}

func (m *MockGateway) DashboardStats(_ context.Context) (*domain.DashboardStats, error) {
	if m.StatsFn == nil {
		return nil, ErrUnexpectedCall
	}
	return m.StatsFn()
}

func (m *MockGateway) Performance(_ context.Context) ([]*domain.PerformanceEntry, error) {
	if m.PerformanceFn == nil {
		return nil, ErrUnexpectedCall
	}
	return m.PerformanceFn()
}

func (m *MockGateway) Seed(_ context.Context) (string, error) {
	if m.SeedFn == nil {
		return "", ErrUnexpectedCall
	}
	return m.SeedFn()
}

func (m *MockGateway) Health(_ context.Context) error {
	if m.HealthFn == nil {
		return ErrUnexpectedCall
	}
	return m.HealthFn()
}

// NopLogger is a domain.Logger that discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}
