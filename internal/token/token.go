package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNotJWT = errors.New("token is not a JWT")

// Claims holds the subset of bearer-token claims the client inspects.
// The client never holds the signing secret, so claims are informational
// only; the backend remains the authority on token validity.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Inspect parses a bearer token without verifying its signature and
// returns the claims it carries. Opaque (non-JWT) tokens return ErrNotJWT.
func Inspect(raw string) (Claims, error) {
	var rc jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &rc); err != nil {
		return Claims{}, ErrNotJWT
	}

	c := Claims{Subject: rc.Subject}
	if rc.ExpiresAt != nil {
		c.ExpiresAt = rc.ExpiresAt.Time
	}
	return c, nil
}

// Expired reports whether raw is a JWT whose expiry is already past.
// Opaque tokens and tokens without an exp claim are never considered
// expired client-side.
func Expired(raw string, now time.Time) bool {
	c, err := Inspect(raw)
	if err != nil {
		return false
	}
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}
