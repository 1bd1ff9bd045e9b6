package usecase

import (
	"context"
	"time"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// EditTaskInput contains the parameters for editing a task.
// All fields except TaskID are optional; nil means no change.
type EditTaskInput struct {
	Title       *string
	Description *string
	Priority    *domain.Priority
	Deadline    *time.Time
	AssignedTo  *string
	TaskID      string
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task *domain.Task
}

// EditTask is the use case for editing an existing task.
type EditTask struct {
	gateway domain.Gateway
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(gateway domain.Gateway) *EditTask {
	return &EditTask{gateway: gateway}
}

// Execute edits a task with the given input.
func (uc *EditTask) Execute(ctx context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	if in.Title == nil && in.Description == nil && in.Priority == nil && in.Deadline == nil && in.AssignedTo == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if in.Title != nil && *in.Title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if in.Priority != nil && !in.Priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}

	task, err := uc.gateway.UpdateTask(ctx, in.TaskID, domain.TaskUpdate{
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Deadline:    in.Deadline,
		AssignedTo:  in.AssignedTo,
	})
	if err != nil {
		return nil, err
	}
	return &EditTaskOutput{Task: task}, nil
}
