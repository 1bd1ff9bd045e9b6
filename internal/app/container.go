// Package app provides the dependency injection container for the application.
package app

import (
	"path/filepath"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
	"github.com/DAKSHSHARMA2901/officeemergent/internal/infra/api"
	"github.com/DAKSHSHARMA2901/officeemergent/internal/infra/config"
	"github.com/DAKSHSHARMA2901/officeemergent/internal/infra/logging"
	"github.com/DAKSHSHARMA2901/officeemergent/internal/infra/session"
	"github.com/DAKSHSHARMA2901/officeemergent/internal/infra/token"
	"github.com/DAKSHSHARMA2901/officeemergent/internal/usecase"
)

// Paths holds the filesystem locations the application uses.
type Paths struct {
	ConfigDir   string // Config directory, e.g. ~/.config/office
	SessionPath string // Path to session.json
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Gateway       domain.Gateway
	Sessions      domain.SessionStore
	Inspector     domain.TokenInspector
	Clock         domain.Clock
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Configuration
	Config *domain.Config
	Paths  Paths
}

// New creates a new Container rooted at the user's config directory.
func New() (*Container, error) {
	configDir := config.Dir()
	paths := Paths{
		ConfigDir:   configDir,
		SessionPath: filepath.Join(configDir, "session.json"),
	}

	configLoader := config.NewLoader(configDir)
	cfg, err := configLoader.Load()
	if err != nil {
		return nil, err
	}
	if cfg.API.URL == "" {
		return nil, domain.ErrNoAPIURL
	}

	logger := logging.New(configDir, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Gateway:       api.New(cfg.API.URL, logger),
		Sessions:      session.New(paths.SessionPath),
		Inspector:     token.New(),
		Clock:         domain.RealClock{},
		Logger:        logger,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(configDir),
		Config:        cfg,
		Paths:         paths,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(gateway domain.Gateway, sessions domain.SessionStore, inspector domain.TokenInspector, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Gateway:   gateway,
		Sessions:  sessions,
		Inspector: inspector,
		Clock:     clock,
		Logger:    logger,
		Config:    domain.NewDefaultConfig(),
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if l, ok := c.Logger.(*logging.Logger); ok {
		return l.Close()
	}
	return nil
}

// UseCase factory methods

// RestoreSessionUseCase returns a new RestoreSession use case.
func (c *Container) RestoreSessionUseCase() *usecase.RestoreSession {
	return usecase.NewRestoreSession(c.Gateway, c.Sessions, c.Logger)
}

// LoginUseCase returns a new Login use case.
func (c *Container) LoginUseCase() *usecase.Login {
	return usecase.NewLogin(c.Gateway, c.Sessions, c.Logger)
}

// RegisterUseCase returns a new Register use case.
func (c *Container) RegisterUseCase() *usecase.Register {
	return usecase.NewRegister(c.Gateway, c.Sessions, c.Logger)
}

// LogoutUseCase returns a new Logout use case.
func (c *Container) LogoutUseCase() *usecase.Logout {
	return usecase.NewLogout(c.Gateway, c.Sessions, c.Logger)
}

// CurrentUserUseCase returns a new CurrentUser use case.
func (c *Container) CurrentUserUseCase() *usecase.CurrentUser {
	return usecase.NewCurrentUser(c.Gateway, c.Sessions, c.Inspector)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Gateway)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Gateway)
}

// CreateTaskUseCase returns a new CreateTask use case.
func (c *Container) CreateTaskUseCase() *usecase.CreateTask {
	return usecase.NewCreateTask(c.Gateway)
}

// CreateTasksFromFileUseCase returns a new CreateTasksFromFile use case.
func (c *Container) CreateTasksFromFileUseCase() *usecase.CreateTasksFromFile {
	return usecase.NewCreateTasksFromFile(c.Gateway)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Gateway)
}

// AdvanceTaskUseCase returns a new AdvanceTask use case.
func (c *Container) AdvanceTaskUseCase() *usecase.AdvanceTask {
	return usecase.NewAdvanceTask(c.Gateway)
}

// SetTaskStatusUseCase returns a new SetTaskStatus use case.
func (c *Container) SetTaskStatusUseCase() *usecase.SetTaskStatus {
	return usecase.NewSetTaskStatus(c.Gateway)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Gateway)
}

// ListUsersUseCase returns a new ListUsers use case.
func (c *Container) ListUsersUseCase() *usecase.ListUsers {
	return usecase.NewListUsers(c.Gateway)
}

// EditUserUseCase returns a new EditUser use case.
func (c *Container) EditUserUseCase() *usecase.EditUser {
	return usecase.NewEditUser(c.Gateway)
}

// SetUserRoleUseCase returns a new SetUserRole use case.
func (c *Container) SetUserRoleUseCase() *usecase.SetUserRole {
	return usecase.NewSetUserRole(c.Gateway)
}

// ToggleUserActiveUseCase returns a new ToggleUserActive use case.
func (c *Container) ToggleUserActiveUseCase() *usecase.ToggleUserActive {
	return usecase.NewToggleUserActive(c.Gateway)
}

// DeleteUserUseCase returns a new DeleteUser use case.
func (c *Container) DeleteUserUseCase() *usecase.DeleteUser {
	return usecase.NewDeleteUser(c.Gateway)
}

// DashboardStatsUseCase returns a new DashboardStats use case.
func (c *Container) DashboardStatsUseCase() *usecase.DashboardStats {
	return usecase.NewDashboardStats(c.Gateway)
}

// TeamPerformanceUseCase returns a new TeamPerformance use case.
func (c *Container) TeamPerformanceUseCase() *usecase.TeamPerformance {
	return usecase.NewTeamPerformance(c.Gateway)
}
