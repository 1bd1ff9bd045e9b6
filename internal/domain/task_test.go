package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTask_IsOverdue(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name    string
		task    Task
		overdue bool
	}{
		{"past deadline, pending", Task{Deadline: &past, Status: StatusPending}, true},
		{"past deadline, in progress", Task{Deadline: &past, Status: StatusInProgress}, true},
		{"past deadline, completed", Task{Deadline: &past, Status: StatusCompleted}, false},
		{"future deadline, pending", Task{Deadline: &future, Status: StatusPending}, false},
		{"no deadline", Task{Status: StatusPending}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overdue, tt.task.IsOverdue(now))
		})
	}
}

func TestTask_CanAdvance(t *testing.T) {
	assert.True(t, (&Task{Status: StatusPending}).CanAdvance())
	assert.True(t, (&Task{Status: StatusReview}).CanAdvance())
	assert.False(t, (&Task{Status: StatusCompleted}).CanAdvance())
}

func TestUser_CanEditTask(t *testing.T) {
	task := &Task{ID: "t1", AssignedTo: "u1"}

	manager := &User{ID: "m1", Role: RoleManager}
	assignee := &User{ID: "u1", Role: RoleEmployee}
	other := &User{ID: "u2", Role: RoleEmployee}

	assert.True(t, manager.CanEditTask(task))
	assert.True(t, assignee.CanEditTask(task))
	assert.False(t, other.CanEditTask(task))
	assert.False(t, (*User)(nil).CanEditTask(task))
}
