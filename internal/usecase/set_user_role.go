package usecase

import (
	"context"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// SetUserRoleInput contains the parameters for changing a role.
type SetUserRoleInput struct {
	UserID string
	Role   domain.Role
}

// SetUserRole is the use case for changing a user's role. Admin only.
type SetUserRole struct {
	gateway domain.Gateway
}

// NewSetUserRole creates a new SetUserRole use case.
func NewSetUserRole(gateway domain.Gateway) *SetUserRole {
	return &SetUserRole{gateway: gateway}
}

// Execute changes the role.
func (uc *SetUserRole) Execute(ctx context.Context, in SetUserRoleInput) error {
	if !in.Role.IsValid() {
		return domain.ErrInvalidRole
	}
	return uc.gateway.SetUserRole(ctx, in.UserID, in.Role)
}
