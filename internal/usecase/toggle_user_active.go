package usecase

import (
	"context"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// ToggleUserActiveInput contains the parameters for the toggle.
type ToggleUserActiveInput struct {
	UserID string
}

// ToggleUserActiveOutput contains the new state and the server message.
// Fields are ordered to minimize memory padding.
type ToggleUserActiveOutput struct {
	Message  string
	IsActive bool
}

// ToggleUserActive flips a user's active flag. Admin only; the server
// refuses to deactivate the calling admin itself.
type ToggleUserActive struct {
	gateway domain.Gateway
}

// NewToggleUserActive creates a new ToggleUserActive use case.
func NewToggleUserActive(gateway domain.Gateway) *ToggleUserActive {
	return &ToggleUserActive{gateway: gateway}
}

// Execute toggles the flag.
func (uc *ToggleUserActive) Execute(ctx context.Context, in ToggleUserActiveInput) (*ToggleUserActiveOutput, error) {
	active, message, err := uc.gateway.ToggleUserActive(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	return &ToggleUserActiveOutput{IsActive: active, Message: message}, nil
}
