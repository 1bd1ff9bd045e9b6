// Package api provides the HTTP gateway client for the remote office
// service. It attaches the bearer credential to every request and tags
// failed calls with a domain.APIError; session side effects are owned by
// the caller, never by this layer.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// Ensure Client implements domain.Gateway.
var _ domain.Gateway = (*Client)(nil)

const defaultTimeout = 15 * time.Second

// Client talks to the office REST API.
// Fields are ordered to minimize memory padding.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     domain.Logger
	baseURL    string
	token      string
	mu         sync.RWMutex
}

// New creates a new Client for the given API root.
// The limiter keeps rapid UI interactions from hammering the server;
// it is generous enough to never throttle interactive use.
func New(baseURL string, logger domain.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(20), 40),
		logger:     logger,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// SetToken replaces the credential attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errorBody is the FastAPI error envelope.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// do executes one API call. body and out may be nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &domain.APIError{Kind: domain.KindTransport, Message: err.Error()}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("api", fmt.Sprintf("%s %s: %v", method, path, err))
		}
		return &domain.APIError{Kind: domain.KindTransport, Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.APIError{Kind: domain.KindTransport, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := decodeDetail(raw)
		kind := domain.Classify(resp.StatusCode, message)
		if c.logger != nil {
			c.logger.Warn("api", fmt.Sprintf("%s %s: %d %s", method, path, resp.StatusCode, message))
		}
		return &domain.APIError{Kind: kind, Status: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// decodeDetail extracts the server's error detail. FastAPI usually sends
// a string; validation errors send structured data, which is passed
// through verbatim so the user still sees something actionable.
func decodeDetail(raw []byte) string {
	var envelope errorBody
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Detail) == 0 {
		return strings.TrimSpace(string(raw))
	}
	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return s
	}
	return string(envelope.Detail)
}

// deadlineWire formats a deadline the way the server stores timestamps
// (Python isoformat, microseconds, explicit +00:00 offset). The server
// compares deadline strings lexicographically, so the format must match.
func deadlineWire(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000") + "+00:00"
}

// === Auth ===

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", credentialsRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &domain.Session{Token: resp.Token, User: resp.User}, nil
}

// Register creates an account and returns its session. Self-registration
// always requests the lowest-privilege role; the server enforces this
// default anyway.
func (c *Client) Register(ctx context.Context, name, email, password string) (*domain.Session, error) {
	body := registerRequest{Name: name, Email: email, Password: password, Role: string(domain.RoleEmployee)}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, &resp); err != nil {
		return nil, err
	}
	return &domain.Session{Token: resp.Token, User: resp.User}, nil
}

// Me fetches the authoritative identity for the current credential.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// === Users ===

// ListUsers fetches all users. Admin/manager only.
func (c *Client) ListUsers(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

type userUpdateRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Role  *string `json:"role,omitempty"`
}

// UpdateUser edits a user record and returns the server's updated copy.
func (c *Client) UpdateUser(ctx context.Context, id string, in domain.UserUpdate) (*domain.User, error) {
	body := userUpdateRequest{Name: in.Name, Email: in.Email}
	if in.Role != nil {
		role := string(*in.Role)
		body.Role = &role
	}
	var user domain.User
	if err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(id), body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SetUserRole changes a user's role.
func (c *Client) SetUserRole(ctx context.Context, id string, role domain.Role) error {
	body := map[string]string{"role": string(role)}
	return c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(id)+"/role", body, nil)
}

type toggleActiveResponse struct {
	IsActive bool   `json:"isActive"`
	Message  string `json:"message"`
}

// ToggleUserActive flips a user's active flag and returns the new state
// plus the server's message.
func (c *Client) ToggleUserActive(ctx context.Context, id string) (bool, string, error) {
	var resp toggleActiveResponse
	err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(id)+"/toggle-active", struct{}{}, &resp)
	if err != nil {
		return false, "", err
	}
	return resp.IsActive, resp.Message, nil
}

// DeleteUser removes a user. The server also removes tasks assigned to them.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil)
}

// === Tasks ===

// ListTasks fetches tasks with optional server-side scoping. The server
// additionally restricts employees to their own tasks.
func (c *Client) ListTasks(ctx context.Context, q domain.TaskQuery) ([]*domain.Task, error) {
	params := url.Values{}
	if q.Status != "" {
		params.Set("status", string(q.Status))
	}
	if q.Priority != "" {
		params.Set("priority", string(q.Priority))
	}
	if q.AssignedTo != "" {
		params.Set("assignedTo", q.AssignedTo)
	}
	path := "/tasks"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	var tasks []*domain.Task
	if err := c.do(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask fetches a single task.
func (c *Client) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	var task domain.Task
	if err := c.do(ctx, http.MethodGet, "/tasks/"+url.PathEscape(id), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

type taskCreateRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	Deadline    *string `json:"deadline,omitempty"`
	AssignedTo  *string `json:"assignedTo,omitempty"`
}

// CreateTask creates a task and returns the server's copy.
func (c *Client) CreateTask(ctx context.Context, in domain.TaskCreate) (*domain.Task, error) {
	body := taskCreateRequest{
		Title:       in.Title,
		Description: in.Description,
		Priority:    string(in.Priority),
	}
	if in.Deadline != nil {
		wire := deadlineWire(*in.Deadline)
		body.Deadline = &wire
	}
	if in.AssignedTo != "" {
		body.AssignedTo = &in.AssignedTo
	}
	var task domain.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

type taskUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Deadline    *string `json:"deadline,omitempty"`
	AssignedTo  *string `json:"assignedTo,omitempty"`
}

// UpdateTask edits a task and returns the server's updated copy.
func (c *Client) UpdateTask(ctx context.Context, id string, in domain.TaskUpdate) (*domain.Task, error) {
	body := taskUpdateRequest{
		Title:       in.Title,
		Description: in.Description,
		AssignedTo:  in.AssignedTo,
	}
	if in.Priority != nil {
		p := string(*in.Priority)
		body.Priority = &p
	}
	if in.Deadline != nil {
		wire := deadlineWire(*in.Deadline)
		body.Deadline = &wire
	}
	var task domain.Task
	if err := c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id), body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

type taskStatusRequest struct {
	Status string `json:"status"`
}

// SetTaskStatus changes a task's status and returns the server's copy.
func (c *Client) SetTaskStatus(ctx context.Context, id string, status domain.Status) (*domain.Task, error) {
	var task domain.Task
	err := c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id)+"/status", taskStatusRequest{Status: string(status)}, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil)
}

// === Dashboard ===

// DashboardStats fetches the role-scoped aggregate counters.
func (c *Client) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Performance fetches per-employee completion stats. Admin/manager only.
func (c *Client) Performance(ctx context.Context) ([]*domain.PerformanceEntry, error) {
	var entries []*domain.PerformanceEntry
	if err := c.do(ctx, http.MethodGet, "/dashboard/performance", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// === Misc ===

type messageResponse struct {
	Message string `json:"message"`
}

// Seed asks the server to create demo users and tasks.
func (c *Client) Seed(ctx context.Context) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/seed", struct{}{}, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Health probes the API root.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}
