package usecase

import (
	"context"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// DeleteUserInput contains the parameters for deleting a user.
type DeleteUserInput struct {
	UserID string
}

// DeleteUser is the use case for deleting a user. Admin only; the
// server also removes the user's assigned tasks.
type DeleteUser struct {
	gateway domain.Gateway
}

// NewDeleteUser creates a new DeleteUser use case.
func NewDeleteUser(gateway domain.Gateway) *DeleteUser {
	return &DeleteUser{gateway: gateway}
}

// Execute deletes the user.
func (uc *DeleteUser) Execute(ctx context.Context, in DeleteUserInput) error {
	if in.UserID == "" {
		return domain.ErrUserNotFound
	}
	return uc.gateway.DeleteUser(ctx, in.UserID)
}
