package ports

import (
	"context"

	"github.com/pressroom/content-system/internal/core/domain"
)

// UserRepository defines the persistence operations for accounts.
// The store must enforce username uniqueness natively (unique index);
// Create returns domain.ErrUserExists on violation.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
