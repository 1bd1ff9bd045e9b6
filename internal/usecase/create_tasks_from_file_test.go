package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

const taskFile = `# Sprint 42

---
title: Fix authentication bug
priority: critical
deadline: 2026-09-01
assign: u2
---
Users unable to reset passwords.

---
title: Update API docs
---
`

func TestCreateTasksFromFile_Execute(t *testing.T) {
	t.Run("creates blocks in file order", func(t *testing.T) {
		var created []domain.TaskCreate
		gateway := &mockGateway{
			createTaskFn: func(in domain.TaskCreate) (*domain.Task, error) {
				created = append(created, in)
				return &domain.Task{ID: "t" + in.Title[:1], Title: in.Title}, nil
			},
		}

		uc := NewCreateTasksFromFile(gateway)
		out, err := uc.Execute(context.Background(), CreateTasksFromFileInput{Content: taskFile})
		require.NoError(t, err)
		require.Len(t, out.Tasks, 2)
		require.Len(t, created, 2)

		first := created[0]
		assert.Equal(t, "Fix authentication bug", first.Title)
		assert.Equal(t, domain.PriorityCritical, first.Priority)
		assert.Equal(t, "u2", first.AssignedTo)
		assert.Equal(t, "Users unable to reset passwords.", first.Description)
		require.NotNil(t, first.Deadline)
		// A bare date means end of that day.
		assert.Equal(t, time.Date(2026, 9, 1, 23, 59, 59, 0, time.UTC), first.Deadline.UTC())

		second := created[1]
		assert.Equal(t, "Update API docs", second.Title)
		assert.Equal(t, domain.PriorityMedium, second.Priority)
		assert.Nil(t, second.Deadline)
	})

	t.Run("dry run parses without creating", func(t *testing.T) {
		gateway := &mockGateway{} // createTaskFn unset: any create fails the test
		uc := NewCreateTasksFromFile(gateway)
		out, err := uc.Execute(context.Background(), CreateTasksFromFileInput{Content: taskFile, DryRun: true})
		require.NoError(t, err)
		require.Len(t, out.Tasks, 2)
		assert.Equal(t, "Fix authentication bug", out.Tasks[0].Title)
	})

	t.Run("parse error anywhere creates nothing", func(t *testing.T) {
		bad := taskFile + "\n---\npriority: high\n---\nno title here\n"
		gateway := &mockGateway{}
		uc := NewCreateTasksFromFile(gateway)
		_, err := uc.Execute(context.Background(), CreateTasksFromFileInput{Content: bad})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	})

	t.Run("missing closing delimiter", func(t *testing.T) {
		uc := NewCreateTasksFromFile(&mockGateway{})
		_, err := uc.Execute(context.Background(), CreateTasksFromFileInput{Content: "---\ntitle: x\n"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing closing")
	})

	t.Run("no blocks", func(t *testing.T) {
		uc := NewCreateTasksFromFile(&mockGateway{})
		_, err := uc.Execute(context.Background(), CreateTasksFromFileInput{Content: "just prose\n"})
		require.Error(t, err)
	})

	t.Run("invalid deadline", func(t *testing.T) {
		uc := NewCreateTasksFromFile(&mockGateway{})
		_, err := uc.Execute(context.Background(), CreateTasksFromFileInput{
			Content: "---\ntitle: x\ndeadline: tomorrow\n---\n",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid deadline")
	})
}
