package usecase

import (
	"context"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID string
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	gateway domain.Gateway
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(gateway domain.Gateway) *DeleteTask {
	return &DeleteTask{gateway: gateway}
}

// Execute deletes the task.
func (uc *DeleteTask) Execute(ctx context.Context, in DeleteTaskInput) error {
	if in.TaskID == "" {
		return domain.ErrTaskNotFound
	}
	return uc.gateway.DeleteTask(ctx, in.TaskID)
}
