package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestDecodeExtractsIdentityClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signToken(t, jwt.MapClaims{
		"sub":      "u1",
		"fullName": "Asha Rao",
		"role":     "student",
		"exp":      exp.Unix(),
	})

	claims, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if claims.UserID != "u1" {
		t.Errorf("expected subject u1, got %q", claims.UserID)
	}
	if claims.FullName != "Asha Rao" {
		t.Errorf("expected full name, got %q", claims.FullName)
	}
	if claims.Role != "student" {
		t.Errorf("expected role, got %q", claims.Role)
	}
	if !claims.ExpiresAt.Equal(exp) {
		t.Errorf("expected expiry %v, got %v", exp, claims.ExpiresAt)
	}
}

func TestDecodeFallsBackToNameClaim(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{"sub": "u1", "name": "Ravi Kumar"})

	claims, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if claims.FullName != "Ravi Kumar" {
		t.Errorf("expected name fallback, got %q", claims.FullName)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode("not-a-jwt"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestExpired(t *testing.T) {
	now := time.Now()

	past := &Claims{ExpiresAt: now.Add(-time.Minute)}
	if !past.Expired(now) {
		t.Error("past expiry must report expired")
	}

	future := &Claims{ExpiresAt: now.Add(time.Minute)}
	if future.Expired(now) {
		t.Error("future expiry must not report expired")
	}

	// Tokens without an expiry claim never expire client-side
	unset := &Claims{}
	if unset.Expired(now) {
		t.Error("missing expiry must not report expired")
	}
}
