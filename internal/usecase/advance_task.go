package usecase

import (
	"context"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// AdvanceTaskInput contains the parameters for advancing a task.
type AdvanceTaskInput struct {
	TaskID string
}

// AdvanceTaskOutput contains the result of advancing a task.
// Fields are ordered to minimize memory padding.
type AdvanceTaskOutput struct {
	Task *domain.Task
	From domain.Status
	To   domain.Status
}

// AdvanceTask moves a task one step along the fixed progression
// pending → in_progress → review → completed. A completed task has no
// successor and cannot be advanced.
type AdvanceTask struct {
	gateway domain.Gateway
}

// NewAdvanceTask creates a new AdvanceTask use case.
func NewAdvanceTask(gateway domain.Gateway) *AdvanceTask {
	return &AdvanceTask{gateway: gateway}
}

// Execute advances the task to its successor status.
func (uc *AdvanceTask) Execute(ctx context.Context, in AdvanceTaskInput) (*AdvanceTaskOutput, error) {
	task, err := uc.gateway.GetTask(ctx, in.TaskID)
	if err != nil {
		return nil, err
	}

	next, ok := task.Status.Next()
	if !ok {
		return nil, domain.ErrTaskCompleted
	}

	updated, err := uc.gateway.SetTaskStatus(ctx, in.TaskID, next)
	if err != nil {
		return nil, err
	}
	return &AdvanceTaskOutput{Task: updated, From: task.Status, To: next}, nil
}
