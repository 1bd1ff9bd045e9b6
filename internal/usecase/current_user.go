package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// CurrentUserInput contains the parameters for showing the session.
type CurrentUserInput struct {
	// Verify re-validates the stored credential against the server and
	// adopts its authoritative identity. Without it only the persisted
	// copy is shown.
	Verify bool
}

// CurrentUserOutput contains the stored identity and token expiry.
// Fields are ordered to minimize memory padding.
type CurrentUserOutput struct {
	Expiry    time.Time
	User      *domain.User
	HasExpiry bool
}

// CurrentUser is the use case behind `office whoami`.
type CurrentUser struct {
	gateway   domain.Gateway
	sessions  domain.SessionStore
	inspector domain.TokenInspector
}

// NewCurrentUser creates a new CurrentUser use case.
func NewCurrentUser(gateway domain.Gateway, sessions domain.SessionStore, inspector domain.TokenInspector) *CurrentUser {
	return &CurrentUser{
		gateway:   gateway,
		sessions:  sessions,
		inspector: inspector,
	}
}

// Execute returns the stored identity. With Verify it replaces the
// persisted identity with the server's copy first.
func (uc *CurrentUser) Execute(ctx context.Context, in CurrentUserInput) (*CurrentUserOutput, error) {
	stored, err := uc.sessions.Load()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if stored == nil {
		return nil, domain.ErrNotLoggedIn
	}

	if in.Verify {
		uc.gateway.SetToken(stored.Token)
		me, err := uc.gateway.Me(ctx)
		if err != nil {
			return nil, err
		}
		stored.User = me
		if err := uc.sessions.Save(stored); err != nil {
			return nil, fmt.Errorf("persist session: %w", err)
		}
	}

	out := &CurrentUserOutput{User: stored.User}
	if uc.inspector != nil {
		out.Expiry, out.HasExpiry = uc.inspector.Expiry(stored.Token)
	}
	return out, nil
}
