package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func TestClient_AttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	r := mux.NewRouter()
	r.HandleFunc("/auth/me", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		gotReqID = req.Header.Get("X-Request-Id")
		writeJSON(w, http.StatusOK, domain.User{ID: "u1", Role: domain.RoleAdmin})
	}).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	defer srv.Close()

	client := New(srv.URL, nil)
	client.SetToken("tok-123")

	user, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestClient_NoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	r := mux.NewRouter()
	r.HandleFunc("/auth/login", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, map[string]any{
			"token": "tok-1",
			"user":  domain.User{ID: "u1", Email: "a@office.com", Role: domain.RoleEmployee},
		})
	}).Methods(http.MethodPost)

	srv := httptest.NewServer(r)
	defer srv.Close()

	client := New(srv.URL, nil)
	session, err := client.Login(context.Background(), "a@office.com", "secret1")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.Equal(t, "tok-1", session.Token)
	assert.Equal(t, domain.RoleEmployee, session.User.Role)
}

func TestClient_ClassifiesSessionInvalidatingErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		detail string
		want   domain.ErrorKind
	}{
		{"expired", http.StatusUnauthorized, "Token expired", domain.KindAuthInvalid},
		{"invalid token", http.StatusUnauthorized, "Invalid token", domain.KindAuthInvalid},
		{"deactivated", http.StatusForbidden, "Access Denied - Account deactivated", domain.KindAuthInvalid},
		{"plain denial", http.StatusForbidden, "Insufficient permissions", domain.KindRequest},
		{"not found", http.StatusNotFound, "Task not found", domain.KindRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.NewRouter()
			r.HandleFunc("/tasks/{id}", func(w http.ResponseWriter, _ *http.Request) {
				writeDetail(w, tt.status, tt.detail)
			}).Methods(http.MethodDelete)

			srv := httptest.NewServer(r)
			defer srv.Close()

			client := New(srv.URL, nil)
			client.SetToken("stale")

			err := client.DeleteTask(context.Background(), "t1")
			require.Error(t, err)

			var apiErr *domain.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.detail, apiErr.Message)
		})
	}
}

func TestClient_ListTasksQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	r := mux.NewRouter()
	r.HandleFunc("/tasks", func(w http.ResponseWriter, req *http.Request) {
		gotQuery = req.URL.Query()
		writeJSON(w, http.StatusOK, []domain.Task{{ID: "t1", Title: "Fix login bug"}})
	}).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	defer srv.Close()

	client := New(srv.URL, nil)
	tasks, err := client.ListTasks(context.Background(), domain.TaskQuery{
		Status:     domain.StatusPending,
		Priority:   domain.PriorityHigh,
		AssignedTo: "u7",
	})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, []string{"pending"}, gotQuery["status"])
	assert.Equal(t, []string{"high"}, gotQuery["priority"])
	assert.Equal(t, []string{"u7"}, gotQuery["assignedTo"])
}

func TestClient_CreateTaskDeadlineWireFormat(t *testing.T) {
	var gotBody map[string]any
	r := mux.NewRouter()
	r.HandleFunc("/tasks", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewDecoder(req.Body).Decode(&gotBody)
		writeJSON(w, http.StatusOK, domain.Task{ID: "t1", Title: "Write unit tests"})
	}).Methods(http.MethodPost)

	srv := httptest.NewServer(r)
	defer srv.Close()

	deadline := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	client := New(srv.URL, nil)
	_, err := client.CreateTask(context.Background(), domain.TaskCreate{
		Title:    "Write unit tests",
		Priority: domain.PriorityMedium,
		Deadline: &deadline,
	})
	require.NoError(t, err)

	// Server stores deadlines as Python isoformat strings and compares
	// them lexicographically; the wire format must match.
	assert.Equal(t, "2024-06-01T12:30:00.000000+00:00", gotBody["deadline"])
	assert.Equal(t, "medium", gotBody["priority"])
}

func TestClient_ParsesServerTimestamps(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/tasks", func(w http.ResponseWriter, _ *http.Request) {
		// Python isoformat with microseconds and explicit offset.
		writeJSON(w, http.StatusOK, []map[string]any{{
			"id":       "t1",
			"title":    "Design landing page",
			"status":   "in_progress",
			"priority": "high",
			"deadline": "2024-06-04T09:15:30.123456+00:00",
		}})
	}).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	defer srv.Close()

	client := New(srv.URL, nil)
	tasks, err := client.ListTasks(context.Background(), domain.TaskQuery{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].Deadline)
	assert.Equal(t, 2024, tasks[0].Deadline.Year())
	assert.Equal(t, domain.StatusInProgress, tasks[0].Status)
}

func TestClient_TransportFailure(t *testing.T) {
	client := New("http://127.0.0.1:1", nil)
	_, err := client.Me(context.Background())
	require.Error(t, err)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, domain.KindTransport, apiErr.Kind)
}

func TestClient_ToggleUserActive(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/users/{id}/toggle-active", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"isActive": false, "message": "User deactivated"})
	}).Methods(http.MethodPut)

	srv := httptest.NewServer(r)
	defer srv.Close()

	client := New(srv.URL, nil)
	active, msg, err := client.ToggleUserActive(context.Background(), "u3")
	require.NoError(t, err)
	assert.False(t, active)
	assert.Equal(t, "User deactivated", msg)
}
