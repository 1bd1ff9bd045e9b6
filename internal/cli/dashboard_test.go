package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
	"github.com/DAKSHSHARMA2901/officeemergent/internal/testutil"
)

func TestStatsCommand(t *testing.T) {
	gateway := &testutil.MockGateway{
		StatsFn: func() (*domain.DashboardStats, error) {
			return &domain.DashboardStats{
				TotalTasks: 10, Pending: 4, InProgress: 3, Review: 1, Completed: 2, Overdue: 1,
				TotalUsers: 5, ActiveUsers: 4, InactiveUsers: 1,
				RoleDistribution: domain.RoleDistribution{Admin: 1, Manager: 1, Employee: 3},
			}, nil
		},
	}
	container, _ := newTestContainer(gateway, testAdmin)

	cmd := newStatsCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "Tasks")
	assert.Contains(t, out, "Users")
	assert.Contains(t, out, "Overdue")
	assert.Contains(t, out, "Employees")
}

func TestStatsCommand_EmployeeSeesNoUserSection(t *testing.T) {
	employee := &domain.User{ID: "u2", Name: "Bob", Email: "bob@example.com", Role: domain.RoleEmployee, IsActive: true}
	gateway := &testutil.MockGateway{
		StatsFn: func() (*domain.DashboardStats, error) {
			return &domain.DashboardStats{TotalTasks: 3, Pending: 3}, nil
		},
	}
	container, _ := newTestContainer(gateway, employee)

	cmd := newStatsCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Tasks")
	assert.NotContains(t, buf.String(), "Users")
}

func TestPerformanceCommand(t *testing.T) {
	gateway := &testutil.MockGateway{
		PerformanceFn: func() ([]*domain.PerformanceEntry, error) {
			return []*domain.PerformanceEntry{
				{ID: "u2", Name: "Bob", Email: "bob@example.com", IsActive: true, TotalTasks: 10, CompletedTasks: 9, CompletionRate: 90},
				{ID: "u3", Name: "Cid", Email: "cid@example.com", IsActive: false, TotalTasks: 5, CompletedTasks: 2, CompletionRate: 40},
			}, nil
		},
	}
	container, _ := newTestContainer(gateway, testManager)

	cmd := newPerformanceCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "90%")
	assert.Contains(t, out, "40%")
	// Best rate first.
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Bob")), bytes.Index(buf.Bytes(), []byte("Cid")))
}

func TestPingCommand(t *testing.T) {
	gateway := &testutil.MockGateway{
		HealthFn: func() error { return nil },
	}
	container, _ := newTestContainer(gateway, nil)

	cmd := newPingCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "OK (")
}

func TestPingCommand_Unreachable(t *testing.T) {
	gateway := &testutil.MockGateway{
		HealthFn: func() error {
			return &domain.APIError{Message: "connection refused", Kind: domain.KindTransport}
		},
	}
	container, _ := newTestContainer(gateway, nil)

	cmd := newPingCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server unreachable")
}
