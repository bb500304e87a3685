package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pressroom/content-system/internal/core/domain"
	"github.com/pressroom/content-system/internal/core/ports"
)

// LoginLimiter throttles failed login attempts per username (Redis).
type LoginLimiter interface {
	Allowed(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// AuthService implements signup and login. Passwords are hashed before
// storage; plaintext is never persisted or logged.
type AuthService struct {
	repo    ports.UserRepository
	hasher  *PasswordHasher
	tokens  *TokenService
	limiter LoginLimiter // optional; nil disables throttling
	log     zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher *PasswordHasher, tokens *TokenService, limiter LoginLimiter, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, limiter: limiter, log: log}
}

// Register creates a new account. The role is validated against the
// closed enumeration before the store is touched; username uniqueness is
// enforced by the store's unique index, surfacing as ErrUserExists.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         parsedRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("account registered")
	return created, nil
}

// Login verifies credentials and issues a bearer token carrying the
// account's identity and role.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allowed(ctx, username)
		if err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("login limiter check failed, proceeding")
		} else if !allowed {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		if s.limiter != nil {
			if err := s.limiter.RecordFailure(ctx, username); err != nil {
				s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
			}
		}
		return "", nil, domain.ErrBadPassword
	}

	token, err := s.tokens.Issue(domain.Identity{Username: user.Username, Role: user.Role}, 0)
	if err != nil {
		return "", nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("failed to reset login limiter")
		}
	}

	return token, user, nil
}
