package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

func TestRestoreSession_Execute(t *testing.T) {
	admin := &domain.User{ID: "u1", Email: "amy@example.com", Name: "Amy", Role: domain.RoleAdmin, IsActive: true}

	t.Run("no stored session settles logged out", func(t *testing.T) {
		gateway := &mockGateway{}
		uc := NewRestoreSession(gateway, &mockSessionStore{}, nil)

		out, err := uc.Execute(context.Background())
		require.NoError(t, err)
		assert.False(t, out.State.LoggedIn())
		assert.Empty(t, gateway.tokens)
	})

	t.Run("valid session adopts server identity", func(t *testing.T) {
		// The server's copy wins over the persisted one, here a changed role.
		fresh := &domain.User{ID: "u1", Email: "amy@example.com", Name: "Amy", Role: domain.RoleManager, IsActive: true}
		gateway := &mockGateway{
			meFn: func() (*domain.User, error) { return fresh, nil },
		}
		sessions := &mockSessionStore{session: &domain.Session{Token: "tok-1", User: admin}}

		uc := NewRestoreSession(gateway, sessions, nil)
		out, err := uc.Execute(context.Background())
		require.NoError(t, err)

		require.True(t, out.State.LoggedIn())
		assert.Equal(t, domain.RoleManager, out.State.User.Role)
		assert.Equal(t, "tok-1", gateway.lastToken())
		assert.Same(t, fresh, sessions.session.User)
	})

	t.Run("rejected session is fully cleared", func(t *testing.T) {
		gateway := &mockGateway{
			meFn: func() (*domain.User, error) {
				return nil, &domain.APIError{Message: "Token expired", Kind: domain.KindAuthInvalid, Status: 401}
			},
		}
		sessions := &mockSessionStore{session: &domain.Session{Token: "stale", User: admin}}

		uc := NewRestoreSession(gateway, sessions, nil)
		out, err := uc.Execute(context.Background())

		// Never surfaced as an error: the caller just sees logged out.
		require.NoError(t, err)
		assert.False(t, out.State.LoggedIn())
		assert.Nil(t, sessions.session)
		assert.True(t, sessions.cleared)
		assert.Equal(t, "", gateway.lastToken())
	})

	t.Run("deactivated account is cleared the same way", func(t *testing.T) {
		gateway := &mockGateway{
			meFn: func() (*domain.User, error) {
				return nil, &domain.APIError{Message: "Access Denied - Account deactivated", Kind: domain.KindAuthInvalid, Status: 403}
			},
		}
		sessions := &mockSessionStore{session: &domain.Session{Token: "tok-1", User: admin}}

		uc := NewRestoreSession(gateway, sessions, nil)
		out, err := uc.Execute(context.Background())
		require.NoError(t, err)
		assert.False(t, out.State.LoggedIn())
		assert.Nil(t, sessions.session)
	})

	t.Run("load failure is surfaced", func(t *testing.T) {
		sessions := &mockSessionStore{loadErr: errors.New("permission denied")}
		uc := NewRestoreSession(&mockGateway{}, sessions, nil)
		_, err := uc.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestLogout_Execute(t *testing.T) {
	t.Run("clears credential and file", func(t *testing.T) {
		gateway := &mockGateway{}
		sessions := &mockSessionStore{session: &domain.Session{Token: "tok-1", User: &domain.User{ID: "u1"}}}

		NewLogout(gateway, sessions, nil).Execute(context.Background())

		assert.Equal(t, "", gateway.lastToken())
		assert.Nil(t, sessions.session)
		assert.True(t, sessions.cleared)
	})

	t.Run("store failure is swallowed", func(t *testing.T) {
		gateway := &mockGateway{}
		sessions := &mockSessionStore{clearErr: errors.New("read-only fs")}

		// Must not panic and must still drop the in-memory credential.
		NewLogout(gateway, sessions, nil).Execute(context.Background())
		assert.Equal(t, "", gateway.lastToken())
	})
}

func TestCurrentUser_Execute(t *testing.T) {
	admin := &domain.User{ID: "u1", Email: "amy@example.com", Name: "Amy", Role: domain.RoleAdmin, IsActive: true}

	t.Run("not logged in", func(t *testing.T) {
		uc := NewCurrentUser(&mockGateway{}, &mockSessionStore{}, nil)
		_, err := uc.Execute(context.Background(), CurrentUserInput{})
		assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
	})

	t.Run("shows persisted identity without network call", func(t *testing.T) {
		gateway := &mockGateway{} // any call would fail the test
		sessions := &mockSessionStore{session: &domain.Session{Token: "tok-1", User: admin}}

		uc := NewCurrentUser(gateway, sessions, nil)
		out, err := uc.Execute(context.Background(), CurrentUserInput{})
		require.NoError(t, err)
		assert.Equal(t, "amy@example.com", out.User.Email)
		assert.False(t, out.HasExpiry)
	})

	t.Run("verify adopts and re-persists server identity", func(t *testing.T) {
		fresh := &domain.User{ID: "u1", Email: "amy@example.com", Name: "Amy R.", Role: domain.RoleAdmin, IsActive: true}
		gateway := &mockGateway{
			meFn: func() (*domain.User, error) { return fresh, nil },
		}
		sessions := &mockSessionStore{session: &domain.Session{Token: "tok-1", User: admin}}

		uc := NewCurrentUser(gateway, sessions, nil)
		out, err := uc.Execute(context.Background(), CurrentUserInput{Verify: true})
		require.NoError(t, err)
		assert.Equal(t, "Amy R.", out.User.Name)
		assert.Same(t, fresh, sessions.session.User)
	})

	t.Run("verify failure is surfaced", func(t *testing.T) {
		gateway := &mockGateway{
			meFn: func() (*domain.User, error) {
				return nil, &domain.APIError{Message: "Invalid token", Kind: domain.KindAuthInvalid, Status: 401}
			},
		}
		sessions := &mockSessionStore{session: &domain.Session{Token: "bad", User: admin}}

		uc := NewCurrentUser(gateway, sessions, nil)
		_, err := uc.Execute(context.Background(), CurrentUserInput{Verify: true})
		assert.True(t, domain.IsAuthInvalid(err))
	})
}
