// Package token decodes claims from backend-issued JWTs. The backend signs
// and verifies its own tokens; the client only reads identity claims out of
// them, so parsing here is deliberately unverified.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity claims the portal backend embeds in its tokens
type Claims struct {
	UserID    string
	FullName  string
	Role      string
	ExpiresAt time.Time
}

type backendClaims struct {
	FullName string `json:"fullName"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Decode extracts the identity claims from a backend token without
// verifying its signature.
func Decode(tokenString string) (*Claims, error) {
	var claims backendClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, &claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}

	name := claims.FullName
	if name == "" {
		name = claims.Name
	}

	out := &Claims{
		UserID:   claims.Subject,
		FullName: name,
		Role:     claims.Role,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// Expired reports whether the token's expiry has passed. Tokens without an
// expiry claim never expire client-side; the backend still rejects them.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return now.After(c.ExpiresAt)
}
