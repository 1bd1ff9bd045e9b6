package usecase

import (
	"context"
	"fmt"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// Logout is the use case for discarding the session. It clears the
// in-memory credential and the session file. No network call is made;
// the server keeps no session state worth revoking.
type Logout struct {
	gateway  domain.Gateway
	sessions domain.SessionStore
	logger   domain.Logger
}

// NewLogout creates a new Logout use case.
func NewLogout(gateway domain.Gateway, sessions domain.SessionStore, logger domain.Logger) *Logout {
	return &Logout{
		gateway:  gateway,
		sessions: sessions,
		logger:   logger,
	}
}

// Execute unconditionally clears credential, identity, and the session
// file. Logout never fails: a store error is logged and swallowed so the
// user always ends up logged out.
func (uc *Logout) Execute(_ context.Context) {
	uc.gateway.SetToken("")
	if err := uc.sessions.Clear(); err != nil && uc.logger != nil {
		uc.logger.Warn("session", fmt.Sprintf("clear session file: %v", err))
	}
	if uc.logger != nil {
		uc.logger.Info("session", "logged out")
	}
}
