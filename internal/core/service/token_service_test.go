package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pressroom/content-system/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(domain.Identity{Username: "alice", Role: domain.RoleAdmin}, 0)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Username != "alice" || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatalf("expected iat and exp to be set")
	}
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != time.Hour {
		t.Fatalf("expected 1h ttl, got %v", ttl)
	}
}

func TestTokenService_TTLClamped(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(domain.Identity{Username: "bob", Role: domain.RoleUser}, 365*24*time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time); ttl > maxTokenTTL {
		t.Fatalf("ttl %v exceeds cap %v", ttl, maxTokenTTL)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	// Hand-craft an already expired token with the right secret.
	expired := signedToken(t, "secret", jwt.SigningMethodHS256, Claims{
		Username: "carol",
		Role:     domain.RoleModerator,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	if _, err := svc.Verify(expired); err != ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_BadSignature(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	other := NewTokenService("other-secret", time.Hour)

	token, err := other.Issue(domain.Identity{Username: "dave", Role: domain.RoleUser}, 0)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Verify(token); err != ErrTokenSignature {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestTokenService_SignatureCheckedBeforeExpiry(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	// Expired AND signed with the wrong secret: signature must win.
	tampered := signedToken(t, "wrong-secret", jwt.SigningMethodHS256, Claims{
		Username: "eve",
		Role:     domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	if _, err := svc.Verify(tampered); err != ErrTokenSignature {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestTokenService_RejectsWrongAlgorithm(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token := signedToken(t, "secret", jwt.SigningMethodHS384, Claims{
		Username: "frank",
		Role:     domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	if _, err := svc.Verify(token); err != ErrTokenSignature {
		t.Fatalf("expected ErrTokenSignature for HS384 token, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := svc.Verify(raw); err != ErrTokenMalformed {
			t.Fatalf("Verify(%q): expected ErrTokenMalformed, got %v", raw, err)
		}
	}
}

func TestTokenService_RejectsUnknownRoleClaim(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token := signedToken(t, "secret", jwt.SigningMethodHS256, Claims{
		Username: "grace",
		Role:     domain.Role("superuser"),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	if _, err := svc.Verify(token); err != ErrTokenMalformed {
		t.Fatalf("expected ErrTokenMalformed for unknown role, got %v", err)
	}
}

func signedToken(t *testing.T, secret string, method jwt.SigningMethod, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}
