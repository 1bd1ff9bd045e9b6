package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Next_Progression(t *testing.T) {
	tests := []struct {
		status Status
		next   Status
		ok     bool
	}{
		{StatusPending, StatusInProgress, true},
		{StatusInProgress, StatusReview, true},
		{StatusReview, StatusCompleted, true},
		{StatusCompleted, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			next, ok := tt.status.Next()
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.next, next)
			}
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusReview.IsTerminal())
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.IsValid(), "status %q should be valid", s)
	}
	assert.False(t, Status("done").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestPriority_Rank_Ordering(t *testing.T) {
	// Ranks strictly increase from low to critical.
	prev := -1
	for _, p := range AllPriorities() {
		require.Greater(t, p.Rank(), prev, "priority %q", p)
		prev = p.Rank()
	}
	assert.Equal(t, -1, Priority("urgent").Rank())
}

func TestPriority_IsValid(t *testing.T) {
	for _, p := range AllPriorities() {
		assert.True(t, p.IsValid())
	}
	assert.False(t, Priority("urgent").IsValid())
}
