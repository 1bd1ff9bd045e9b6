// Package token reads claims out of stored bearer tokens for display.
// Signatures are never verified here; the server remains the sole
// authority on token validity.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/DAKSHSHARMA2901/officeemergent/internal/domain"
)

// Ensure Inspector implements domain.TokenInspector.
var _ domain.TokenInspector = (*Inspector)(nil)

// Inspector decodes JWT claims without verification.
type Inspector struct {
	parser *jwt.Parser
}

// New creates a new Inspector.
func New() *Inspector {
	return &Inspector{parser: jwt.NewParser()}
}

// Expiry returns the token's exp claim. Returns false for opaque or
// malformed tokens and for tokens without an expiry.
func (i *Inspector) Expiry(tokenString string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
