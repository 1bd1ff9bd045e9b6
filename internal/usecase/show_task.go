package usecase

import (
	"context"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	TaskID string
}

// ShowTaskOutput contains the result of showing a task.
type ShowTaskOutput struct {
	Task *domain.Task
}

// ShowTask is the use case for displaying a single task.
type ShowTask struct {
	gateway domain.Gateway
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(gateway domain.Gateway) *ShowTask {
	return &ShowTask{gateway: gateway}
}

// Execute fetches one task by ID.
func (uc *ShowTask) Execute(ctx context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	if in.TaskID == "" {
		return nil, domain.ErrTaskNotFound
	}
	task, err := uc.gateway.GetTask(ctx, in.TaskID)
	if err != nil {
		return nil, err
	}
	return &ShowTaskOutput{Task: task}, nil
}
