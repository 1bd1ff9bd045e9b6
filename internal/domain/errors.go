package domain

import "errors"

// Domain errors.
var (
	ErrNotLoggedIn      = errors.New("not logged in (run 'office login' first)")
	ErrAlreadyLoggedIn  = errors.New("already logged in (run 'office logout' first)")
	ErrForbidden        = errors.New("insufficient permissions for this action")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrInvalidEmail     = errors.New("email is not valid")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrTaskCompleted    = errors.New("task is already completed")
	ErrTaskNotFound     = errors.New("task not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrConfigExists     = errors.New("config file already exists")
	ErrNoAPIURL         = errors.New("API URL not configured (run 'office config init' or set OFFICE_API_URL)")
)
