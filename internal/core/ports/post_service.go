package ports

import (
	"context"

	"github.com/pressroom/content-system/internal/core/domain"
)

// CreatePostInput carries the data needed to submit a new post. Author and
// Role come from the verified token claims, never body fields.
type CreatePostInput struct {
	Author string
	Role   domain.Role
	Title  string
	Body   string
}

// ModeratePostInput carries a moderation decision for a pending post.
type ModeratePostInput struct {
	PostID    string
	Moderator string
	Role      domain.Role
	IsValid   bool
	Note      string
}

// DeletePostInput identifies the post and the caller requesting deletion.
type DeletePostInput struct {
	PostID   string
	Username string
	Role     domain.Role
}

// PostService defines the use-case operations of the moderation workflow.
type PostService interface {
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	ListAll(ctx context.Context, role domain.Role) ([]*domain.Post, error)
	ListPending(ctx context.Context, role domain.Role) ([]*domain.Post, error)
	Moderate(ctx context.Context, input ModeratePostInput) (*domain.Post, error)
	Delete(ctx context.Context, input DeletePostInput) error
}
