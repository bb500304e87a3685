package ports

import (
	"context"

	"github.com/pressroom/content-system/internal/core/domain"
)

// PostRepository defines persistence operations for content items.
// Each call is atomic on its own; cross-call sequences (read then update)
// are not serialized by the store.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns posts filtered by status; an empty status returns all.
	List(ctx context.Context, status domain.PostStatus) ([]*domain.Post, error)
	// UpdateModeration applies a moderation decision to the post.
	UpdateModeration(ctx context.Context, id string, decision domain.ModerationDecision) error
	Delete(ctx context.Context, id string) error
}
