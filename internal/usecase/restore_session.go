package usecase

import (
	"context"
	"fmt"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// RestoreSessionOutput contains the settled session state.
type RestoreSessionOutput struct {
	State domain.SessionState
}

// RestoreSession is the use case run once at process start: read the
// persisted session, validate it against the server, and settle into
// either a confirmed identity or a clean logged-out state. This is the
// only path where a stale session self-corrects or self-destructs
// without explicit user action.
type RestoreSession struct {
	gateway  domain.Gateway
	sessions domain.SessionStore
	logger   domain.Logger
}

// NewRestoreSession creates a new RestoreSession use case.
func NewRestoreSession(gateway domain.Gateway, sessions domain.SessionStore, logger domain.Logger) *RestoreSession {
	return &RestoreSession{
		gateway:  gateway,
		sessions: sessions,
		logger:   logger,
	}
}

// Execute settles the session state. A validation failure of any kind
// clears the credential, identity, and session file, and is never
// surfaced as an error: the caller just sees a logged-out state.
func (uc *RestoreSession) Execute(ctx context.Context) (*RestoreSessionOutput, error) {
	stored, err := uc.sessions.Load()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if stored == nil {
		return &RestoreSessionOutput{}, nil
	}

	// Optimistically adopt the persisted identity, then replace it with
	// the server's authoritative copy.
	uc.gateway.SetToken(stored.Token)
	me, err := uc.gateway.Me(ctx)
	if err != nil {
		uc.gateway.SetToken("")
		_ = uc.sessions.Clear()
		if uc.logger != nil {
			uc.logger.Info("session", fmt.Sprintf("stored session rejected, cleared: %v", err))
		}
		return &RestoreSessionOutput{}, nil
	}

	stored.User = me
	if err := uc.sessions.Save(stored); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return &RestoreSessionOutput{State: domain.SessionState{User: me}}, nil
}
