package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return New(path), path
}

func TestStore_LoadAbsent(t *testing.T) {
	store, _ := newTestStore(t)
	session, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	saved := &domain.Session{
		Token: "tok-abc",
		User: &domain.User{
			ID:       "u1",
			Email:    "admin@office.com",
			Name:     "Alex Admin",
			Role:     domain.RoleAdmin,
			IsActive: true,
		},
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "tok-abc", loaded.Token)
	assert.Equal(t, "u1", loaded.User.ID)
	assert.Equal(t, domain.RoleAdmin, loaded.User.Role)
}

func TestStore_ClearRemovesFile(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.Save(&domain.Session{Token: "t", User: &domain.User{ID: "u1"}}))
	require.NoError(t, store.Clear())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	session, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestStore_ClearAbsentIsNotAnError(t *testing.T) {
	store, _ := newTestStore(t)
	assert.NoError(t, store.Clear())
}

func TestStore_CorruptFileTreatedAsAbsent(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	session, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, session)

	// The corrupt file is gone afterwards.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestStore_TokenWithoutUserTreatedAsAbsent(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"token":"tok-abc"}`), 0o600))

	session, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, session)
}
