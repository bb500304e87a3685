package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pressroom/content-system/internal/core/domain"
)

// Token verification errors. The auth middleware maps each onto its
// WWW-Authenticate challenge; all of them are 401 rejections.
var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenSignature = errors.New("token signature is invalid")
	ErrTokenExpired   = errors.New("token has expired")
)

// maxTokenTTL caps the lifetime of any issued token. Callers cannot
// request an unbounded ttl.
const maxTokenTTL = 7 * 24 * time.Hour

const defaultTokenTTL = 24 * time.Hour

// Claims is the identity data embedded in every token. It is
// reconstructed by Verify on each request and never persisted.
type Claims struct {
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed bearer tokens. The
// signing secret and default ttl are injected at construction so the
// service carries no ambient state.
type TokenService struct {
	secret     []byte
	defaultTTL time.Duration
}

func NewTokenService(secret string, defaultTTL time.Duration) *TokenService {
	if defaultTTL <= 0 {
		defaultTTL = defaultTokenTTL
	}
	if defaultTTL > maxTokenTTL {
		defaultTTL = maxTokenTTL
	}
	return &TokenService{secret: []byte(secret), defaultTTL: defaultTTL}
}

// Issue signs a token for identity. A non-positive ttl uses the
// configured default; any ttl is clamped to maxTokenTTL.
func (s *TokenService) Issue(identity domain.Identity, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	if ttl > maxTokenTTL {
		ttl = maxTokenTTL
	}

	now := time.Now().UTC()
	claims := Claims{
		Username: identity.Username,
		Role:     identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify parses and checks a token string. Pure function of the token
// and the secret: no store or network access. The signing method is
// pinned to HS256, and a tampered payload fails on signature before its
// expiry is ever inspected. A structurally valid token whose role claim
// falls outside the closed enumeration is rejected as malformed.
func (s *TokenService) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !tok.Valid {
		return nil, ErrTokenSignature
	}

	if _, err := domain.ParseRole(string(claims.Role)); err != nil {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
