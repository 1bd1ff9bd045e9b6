package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
	"github.com/DAKSHSHARMA2901/officeemergent/internal/testutil"
)

var testAdmin = &domain.User{ID: "a1", Name: "Amy", Email: "amy@example.com", Role: domain.RoleAdmin, IsActive: true}

func TestUserListCommand(t *testing.T) {
	gateway := &testutil.MockGateway{
		ListUsersFn: func() ([]*domain.User, error) {
			return []*domain.User{
				testAdmin,
				{ID: "bbbbccccdddd", Name: "Bob", Email: "bob@example.com", Role: domain.RoleEmployee, IsActive: false},
			}, nil
		},
	}
	container, _ := newTestContainer(gateway, testAdmin)

	cmd := newUserListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "Amy")
	assert.Contains(t, out, "Admin")
	assert.Contains(t, out, "Bob")
	// The full ID is printed; it feeds user edit/role/toggle/rm directly.
	assert.Contains(t, out, "bbbbccccdddd")
	assert.Contains(t, out, "no")
}

func TestUserListCommand_ActiveOnly(t *testing.T) {
	gateway := &testutil.MockGateway{
		ListUsersFn: func() ([]*domain.User, error) {
			return []*domain.User{
				testAdmin,
				{ID: "u2", Name: "Bob", Email: "bob@example.com", Role: domain.RoleEmployee, IsActive: false},
			}, nil
		},
	}
	container, _ := newTestContainer(gateway, testAdmin)

	cmd := newUserListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--active"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Amy")
	assert.NotContains(t, buf.String(), "Bob")
}

func TestUserEditCommand_OnlyChangedFlags(t *testing.T) {
	gateway := &testutil.MockGateway{
		UpdateUserFn: func(id string, upd domain.UserUpdate) (*domain.User, error) {
			assert.Equal(t, "u2", id)
			require.NotNil(t, upd.Name)
			assert.Equal(t, "Robert", *upd.Name)
			assert.Nil(t, upd.Email)
			assert.Nil(t, upd.Role)
			return &domain.User{ID: "u2", Name: "Robert", Email: "bob@example.com", Role: domain.RoleEmployee, IsActive: true}, nil
		},
	}
	container, _ := newTestContainer(gateway, testAdmin)

	cmd := newUserEditCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"u2", "--name", "Robert"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Updated user u2")
}

func TestUserEditCommand_NoFlags(t *testing.T) {
	container, _ := newTestContainer(&testutil.MockGateway{}, testAdmin)

	cmd := newUserEditCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"u2"})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrNoFieldsToUpdate)
}

func TestUserRoleCommand(t *testing.T) {
	gateway := &testutil.MockGateway{
		SetUserRoleFn: func(id string, role domain.Role) error {
			assert.Equal(t, "u2", id)
			assert.Equal(t, domain.RoleManager, role)
			return nil
		},
	}
	container, _ := newTestContainer(gateway, testAdmin)

	cmd := newUserRoleCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"u2", "manager"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "User u2 is now Manager")
}

func TestUserRoleCommand_InvalidRole(t *testing.T) {
	container, _ := newTestContainer(&testutil.MockGateway{}, testAdmin)

	cmd := newUserRoleCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"u2", "overlord"})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrInvalidRole)
}

func TestUserToggleCommand(t *testing.T) {
	gateway := &testutil.MockGateway{
		ToggleActiveFn: func(id string) (bool, string, error) {
			assert.Equal(t, "u2", id)
			return false, "User deactivated successfully", nil
		},
	}
	container, _ := newTestContainer(gateway, testAdmin)

	cmd := newUserToggleCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"u2"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "User deactivated successfully")
}

func TestUserRmCommand_Force(t *testing.T) {
	deleted := ""
	gateway := &testutil.MockGateway{
		DeleteUserFn: func(id string) error {
			deleted = id
			return nil
		},
	}
	container, _ := newTestContainer(gateway, testAdmin)

	cmd := newUserRmCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"u2", "--force"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "u2", deleted)
	assert.Contains(t, buf.String(), "Deleted user u2")
}

func TestUserRmCommand_PromptDeclined(t *testing.T) {
	container, _ := newTestContainer(&testutil.MockGateway{}, testAdmin)

	cmd := newUserRmCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetIn(bytes.NewBufferString("n\n"))
	cmd.SetArgs([]string{"u2"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Aborted")
}

func TestUserCommands_ForbiddenKeepsSession(t *testing.T) {
	gateway := &testutil.MockGateway{
		ListUsersFn: func() ([]*domain.User, error) {
			return nil, &domain.APIError{Message: "Insufficient permissions", Kind: domain.KindRequest, Status: 403}
		},
	}
	container, sessions := newTestContainer(gateway, testManager)

	cmd := newUserListCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient permissions")
	// A 403 is not a rejected credential; the session survives.
	assert.NotNil(t, sessions.Session)
}
