package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// CreateTaskInput contains the parameters for creating a task.
// Fields are ordered to minimize memory padding.
type CreateTaskInput struct {
	Deadline    *time.Time
	Title       string
	Description string
	Priority    domain.Priority // Empty = medium
	AssignedTo  string
}

// CreateTaskOutput contains the result of creating a task.
type CreateTaskOutput struct {
	Task *domain.Task
}

// CreateTask is the use case for creating a new task. Admin/manager
// only; the server enforces the restriction.
type CreateTask struct {
	gateway domain.Gateway
}

// NewCreateTask creates a new CreateTask use case.
func NewCreateTask(gateway domain.Gateway) *CreateTask {
	return &CreateTask{gateway: gateway}
}

// Execute validates locally, then creates the task on the server.
func (uc *CreateTask) Execute(ctx context.Context, in CreateTaskInput) (*CreateTaskOutput, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}
	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}

	task, err := uc.gateway.CreateTask(ctx, domain.TaskCreate{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Priority:    priority,
		Deadline:    in.Deadline,
		AssignedTo:  in.AssignedTo,
	})
	if err != nil {
		return nil, err
	}
	return &CreateTaskOutput{Task: task}, nil
}
