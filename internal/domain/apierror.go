package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a failed API call. The transport tags the error
// and returns it; deciding what to do about an invalid session (clear
// the store, force the login screen) is owned by a single top-level
// coordinator, never by the transport itself.
type ErrorKind int

const (
	// KindTransport is a network-level failure; no response was decoded.
	KindTransport ErrorKind = iota
	// KindRequest is any non-2xx response that does not invalidate the
	// session. Callers surface the server message and keep their state.
	KindRequest
	// KindAuthInvalid is a 401/403 indicating the stored credential is
	// expired, invalid, or belongs to a deactivated account.
	KindAuthInvalid
)

// APIError is the tagged result of a failed API call.
// Fields are ordered to minimize memory padding.
type APIError struct {
	Message string
	Kind    ErrorKind
	Status  int
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Status != 0 {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return "request failed"
}

// sessionInvalidMarkers match the server's free-text error details that
// mean the credential is no longer usable. The server has no
// machine-readable error code yet, so these substrings are a
// compatibility contract with its exact wording: "Token expired",
// "Invalid token", "Access Denied - Account deactivated".
var sessionInvalidMarkers = []string{"deactivated", "expired", "Invalid token"}

// Classify tags a non-2xx response. Only 401/403 with a recognized
// detail string invalidate the session; an ordinary permission denial
// ("Insufficient permissions", "Not your task") stays a plain request
// error for the caller to surface.
func Classify(status int, message string) ErrorKind {
	if status != 401 && status != 403 {
		return KindRequest
	}
	for _, marker := range sessionInvalidMarkers {
		if strings.Contains(message, marker) {
			return KindAuthInvalid
		}
	}
	return KindRequest
}

// IsAuthInvalid reports whether err carries a session-invalidating
// authorization failure.
func IsAuthInvalid(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindAuthInvalid
}

// APIMessage extracts the server-supplied message from err, or returns
// the empty string so callers can fall back to a generic notice.
func APIMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
