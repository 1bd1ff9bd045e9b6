package usecase

import (
	"context"
	"errors"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// errUnexpectedCall is returned by mock methods a test did not arm.
var errUnexpectedCall = errors.New("unexpected gateway call")

// mockGateway is a test double for domain.Gateway. Tests arm only the
// functions they expect; anything else fails the call.
type mockGateway struct {
	loginFn        func(email, password string) (*domain.Session, error)
	registerFn     func(name, email, password string) (*domain.Session, error)
	meFn           func() (*domain.User, error)
	listUsersFn    func() ([]*domain.User, error)
	updateUserFn   func(id string, in domain.UserUpdate) (*domain.User, error)
	setUserRoleFn  func(id string, role domain.Role) error
	toggleActiveFn func(id string) (bool, string, error)
	deleteUserFn   func(id string) error
	listTasksFn    func(q domain.TaskQuery) ([]*domain.Task, error)
	getTaskFn      func(id string) (*domain.Task, error)
	createTaskFn   func(in domain.TaskCreate) (*domain.Task, error)
	updateTaskFn   func(id string, in domain.TaskUpdate) (*domain.Task, error)
	setStatusFn    func(id string, status domain.Status) (*domain.Task, error)
	deleteTaskFn   func(id string) error
	statsFn        func() (*domain.DashboardStats, error)
	performanceFn  func() ([]*domain.PerformanceEntry, error)

	tokens []string // every SetToken call, in order
}

func (m *mockGateway) SetToken(token string) {
	m.tokens = append(m.tokens, token)
}

func (m *mockGateway) lastToken() string {
	if len(m.tokens) == 0 {
		return ""
	}
	return m.tokens[len(m.tokens)-1]
}

func (m *mockGateway) Login(_ context.Context, email, password string) (*domain.Session, error) {
	if m.loginFn == nil {
		return nil, errUnexpectedCall
	}
	return m.loginFn(email, password)
}

func (m *mockGateway) Register(_ context.Context, name, email, password string) (*domain.Session, error) {
	if m.registerFn == nil {
		return nil, errUnexpectedCall
	}
	return m.registerFn(name, email, password)
}

func (m *mockGateway) Me(_ context.Context) (*domain.User, error) {
	if m.meFn == nil {
		return nil, errUnexpectedCall
	}
	return m.meFn()
}

func (m *mockGateway) ListUsers(_ context.Context) ([]*domain.User, error) {
	if m.listUsersFn == nil {
		return nil, errUnexpectedCall
	}
	return m.listUsersFn()
}

func (m *mockGateway) UpdateUser(_ context.Context, id string, in domain.UserUpdate) (*domain.User, error) {
	if m.updateUserFn == nil {
		return nil, errUnexpectedCall
	}
	return m.updateUserFn(id, in)
}

func (m *mockGateway) SetUserRole(_ context.Context, id string, role domain.Role) error {
	if m.setUserRoleFn == nil {
		return errUnexpectedCall
	}
	return m.setUserRoleFn(id, role)
}

func (m *mockGateway) ToggleUserActive(_ context.Context, id string) (bool, string, error) {
	if m.toggleActiveFn == nil {
		return false, "", errUnexpectedCall
	}
	return m.toggleActiveFn(id)
}

func (m *mockGateway) DeleteUser(_ context.Context, id string) error {
	if m.deleteUserFn == nil {
		return errUnexpectedCall
	}
	return m.deleteUserFn(id)
}

func (m *mockGateway) ListTasks(_ context.Context, q domain.TaskQuery) ([]*domain.Task, error) {
	if m.listTasksFn == nil {
		return nil, errUnexpectedCall
	}
	return m.listTasksFn(q)
}

func (m *mockGateway) GetTask(_ context.Context, id string) (*domain.Task, error) {
	if m.getTaskFn == nil {
		return nil, errUnexpectedCall
	}
	return m.getTaskFn(id)
}

func (m *mockGateway) CreateTask(_ context.Context, in domain.TaskCreate) (*domain.Task, error) {
	if m.createTaskFn == nil {
		return nil, errUnexpectedCall
	}
	return m.createTaskFn(in)
}

func (m *mockGateway) UpdateTask(_ context.Context, id string, in domain.TaskUpdate) (*domain.Task, error) {
	if m.updateTaskFn == nil {
		return nil, errUnexpectedCall
	}
	return m.updateTaskFn(id, in)
}

func (m *mockGateway) SetTaskStatus(_ context.Context, id string, status domain.Status) (*domain.Task, error) {
	if m.setStatusFn == nil {
		return nil, errUnexpectedCall
	}
	return m.setStatusFn(id, status)
}

func (m *mockGateway) DeleteTask(_ context.Context, id string) error {
	if m.deleteTaskFn == nil {
		return errUnexpectedCall
	}
	return m.deleteTaskFn(id)
}

func (m *mockGateway) DashboardStats(_ context.Context) (*domain.DashboardStats, error) {
	if m.statsFn == nil {
		return nil, errUnexpectedCall
	}
	return m.statsFn()
}

func (m *mockGateway) Performance(_ context.Context) ([]*domain.PerformanceEntry, error) {
	if m.performanceFn == nil {
		return nil, errUnexpectedCall
	}
	return m.performanceFn()
}

func (m *mockGateway) Seed(_ context.Context) (string, error) {
	return "", errUnexpectedCall
}

func (m *mockGateway) Health(_ context.Context) error {
	return errUnexpectedCall
}

// mockSessionStore is a test double for domain.SessionStore.
type mockSessionStore struct {
	session  *domain.Session
	loadErr  error
	saveErr  error
	clearErr error
	cleared  bool
}

func (m *mockSessionStore) Load() (*domain.Session, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.session, nil
}

func (m *mockSessionStore) Save(session *domain.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.session = session
	return nil
}

func (m *mockSessionStore) Clear() error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.session = nil
	m.cleared = true
	return nil
}
