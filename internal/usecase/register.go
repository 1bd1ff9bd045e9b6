package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// RegisterInput contains the fields for creating an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterOutput contains the result of registering.
type RegisterOutput struct {
	User *domain.User
}

// Register is the use case for self-registration. The server assigns
// the lowest-privilege role to self-registered accounts.
type Register struct {
	gateway  domain.Gateway
	sessions domain.SessionStore
	logger   domain.Logger
}

// NewRegister creates a new Register use case.
func NewRegister(gateway domain.Gateway, sessions domain.SessionStore, logger domain.Logger) *Register {
	return &Register{
		gateway:  gateway,
		sessions: sessions,
		logger:   logger,
	}
}

// Execute creates the account and stores the returned session, exactly
// like a successful login.
func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrEmptyName
	}
	if err := validateCredentials(in.Email, in.Password); err != nil {
		return nil, err
	}

	session, err := uc.gateway.Register(ctx, strings.TrimSpace(in.Name), strings.TrimSpace(in.Email), in.Password)
	if err != nil {
		return nil, err
	}

	if err := uc.sessions.Save(session); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	uc.gateway.SetToken(session.Token)

	if uc.logger != nil {
		uc.logger.Info("session", fmt.Sprintf("registered %s", session.User.Email))
	}
	return &RegisterOutput{User: session.User}, nil
}
