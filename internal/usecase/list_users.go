package usecase

import (
	"context"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// ListUsersInput contains the parameters for listing users.
type ListUsersInput struct {
	// ActiveOnly drops deactivated users, e.g. for assignment pickers.
	ActiveOnly bool
}

// ListUsersOutput contains the result of listing users.
type ListUsersOutput struct {
	Users []*domain.User
}

// ListUsers is the use case for listing users. Admin/manager only; the
// server enforces the restriction.
type ListUsers struct {
	gateway domain.Gateway
}

// NewListUsers creates a new ListUsers use case.
func NewListUsers(gateway domain.Gateway) *ListUsers {
	return &ListUsers{gateway: gateway}
}

// Execute fetches users.
func (uc *ListUsers) Execute(ctx context.Context, in ListUsersInput) (*ListUsersOutput, error) {
	users, err := uc.gateway.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if in.ActiveOnly {
		active := make([]*domain.User, 0, len(users))
		for _, u := range users {
			if u.IsActive {
				active = append(active, u)
			}
		}
		users = active
	}
	return &ListUsersOutput{Users: users}, nil
}
