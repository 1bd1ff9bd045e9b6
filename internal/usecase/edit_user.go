package usecase

import (
	"context"
	"strings"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// EditUserInput contains the parameters for editing a user.
// All fields except UserID are optional; nil means no change.
type EditUserInput struct {
	Name   *string
	Email  *string
	Role   *domain.Role
	UserID string
}

// EditUserOutput contains the result of editing a user.
type EditUserOutput struct {
	User *domain.User
}

// EditUser is the use case for editing a user record. Admin only.
type EditUser struct {
	gateway domain.Gateway
}

// NewEditUser creates a new EditUser use case.
func NewEditUser(gateway domain.Gateway) *EditUser {
	return &EditUser{gateway: gateway}
}

// Execute edits a user with the given input.
func (uc *EditUser) Execute(ctx context.Context, in EditUserInput) (*EditUserOutput, error) {
	if in.Name == nil && in.Email == nil && in.Role == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, domain.ErrEmptyName
	}
	if in.Email != nil && !strings.Contains(*in.Email, "@") {
		return nil, domain.ErrInvalidEmail
	}
	if in.Role != nil && !in.Role.IsValid() {
		return nil, domain.ErrInvalidRole
	}

	user, err := uc.gateway.UpdateUser(ctx, in.UserID, domain.UserUpdate{
		Name:  in.Name,
		Email: in.Email,
		Role:  in.Role,
	})
	if err != nil {
		return nil, err
	}
	return &EditUserOutput{User: user}, nil
}
