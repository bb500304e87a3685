package ports

import (
	"context"

	"github.com/pressroom/content-system/internal/core/domain"
)

// AuthService implements signup and login.
type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
