// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// LoginInput contains the credentials for logging in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput contains the result of logging in.
type LoginOutput struct {
	User *domain.User
}

// Login is the use case for exchanging credentials for a session.
type Login struct {
	gateway  domain.Gateway
	sessions domain.SessionStore
	logger   domain.Logger
}

// NewLogin creates a new Login use case.
func NewLogin(gateway domain.Gateway, sessions domain.SessionStore, logger domain.Logger) *Login {
	return &Login{
		gateway:  gateway,
		sessions: sessions,
		logger:   logger,
	}
}

// Execute submits credentials to the server. On success the returned
// credential and identity are stored in memory and in the session file.
// On failure the server's rejection is propagated and stored state is
// left untouched.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	if err := validateCredentials(in.Email, in.Password); err != nil {
		return nil, err
	}

	session, err := uc.gateway.Login(ctx, strings.TrimSpace(in.Email), in.Password)
	if err != nil {
		return nil, err
	}

	if err := uc.sessions.Save(session); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	uc.gateway.SetToken(session.Token)

	if uc.logger != nil {
		uc.logger.Info("session", fmt.Sprintf("logged in as %s (%s)", session.User.Email, session.User.Role))
	}
	return &LoginOutput{User: session.User}, nil
}

// validateCredentials checks presence and length locally, before any
// network call is made.
func validateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return domain.ErrEmptyEmail
	}
	if !strings.Contains(email, "@") {
		return domain.ErrInvalidEmail
	}
	if len(password) < 6 {
		return domain.ErrPasswordTooShort
	}
	return nil
}
