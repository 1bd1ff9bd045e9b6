package usecase

import (
	"context"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
// Query is sent to the server; Filter is applied client-side to the
// fetched collection and never round-trips.
type ListTasksInput struct {
	Query  domain.TaskQuery
	Filter domain.TaskFilter
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks   []*domain.Task // Tasks passing the client-side filter
	Fetched int            // Size of the collection before filtering
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	gateway domain.Gateway
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(gateway domain.Gateway) *ListTasks {
	return &ListTasks{gateway: gateway}
}

// Execute fetches tasks (the server scopes employees to their own) and
// applies the client-side filter.
func (uc *ListTasks) Execute(ctx context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	tasks, err := uc.gateway.ListTasks(ctx, in.Query)
	if err != nil {
		return nil, err
	}
	return &ListTasksOutput{
		Tasks:   in.Filter.Apply(tasks),
		Fetched: len(tasks),
	}, nil
}
