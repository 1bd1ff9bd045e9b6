// Package domain contains core business entities and interfaces.
package domain

import "time"

// Role is the authorization level assigned to a user by the server.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// AllRoles returns all valid role values.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleEmployee}
}

// IsValid returns true if the role is a known valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	default:
		return false
	}
}

// CanManage returns true if the role may mutate tasks and assign work.
func (r Role) CanManage() bool {
	return r == RoleAdmin || r == RoleManager
}

// Display returns a human-readable representation of the role.
func (r Role) Display() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleManager:
		return "Manager"
	case RoleEmployee:
		return "Employee"
	default:
		return string(r)
	}
}

// User is the client's projection of a server-owned user record.
// JSON field names follow the API wire format.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// CanEditTask returns true if the user may change the status of the given
// task: managers and admins always, employees only on their own tasks.
func (u *User) CanEditTask(t *Task) bool {
	if u == nil {
		return false
	}
	if u.Role.CanManage() {
		return true
	}
	return t != nil && t.AssignedTo == u.ID
}
