package domain

// Session is the authenticated identity as known to the client: the
// opaque bearer token plus the server's copy of the user record. It is
// held in memory and mirrored into the session file; both are always
// written and cleared together.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// SessionState is what the route guard reads: whether the initial
// restoration is still settling, and the identity if one is present.
//
// Invariant: User is non-nil only while Loading is true (identity taken
// optimistically from the session file, pending validation) or after the
// token has been validated against the server at least once since the
// process started.
type SessionState struct {
	User    *User
	Loading bool
}

// LoggedIn returns true if a validated identity is present.
func (s SessionState) LoggedIn() bool {
	return !s.Loading && s.User != nil
}
