package usecase

import (
	"context"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// SetTaskStatusInput contains the parameters for an explicit status change.
type SetTaskStatusInput struct {
	TaskID string
	Status domain.Status
}

// SetTaskStatusOutput contains the result of the status change.
type SetTaskStatusOutput struct {
	Task *domain.Task
}

// SetTaskStatus sets a task to an explicitly selected status. Unlike
// advance, lateral and backward moves are allowed here; the progression
// only constrains the advance action.
type SetTaskStatus struct {
	gateway domain.Gateway
}

// NewSetTaskStatus creates a new SetTaskStatus use case.
func NewSetTaskStatus(gateway domain.Gateway) *SetTaskStatus {
	return &SetTaskStatus{gateway: gateway}
}

// Execute sets the task status.
func (uc *SetTaskStatus) Execute(ctx context.Context, in SetTaskStatusInput) (*SetTaskStatusOutput, error) {
	if !in.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	task, err := uc.gateway.SetTaskStatus(ctx, in.TaskID, in.Status)
	if err != nil {
		return nil, err
	}
	return &SetTaskStatusOutput{Task: task}, nil
}
