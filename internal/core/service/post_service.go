package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pressroom/content-system/internal/core/domain"
	"github.com/pressroom/content-system/internal/core/ports"
)

// PostService implements the moderation workflow. Every operation
// authorizes through domain.Decide before touching the store.
type PostService struct {
	repo ports.PostRepository
	log  zerolog.Logger
}

func NewPostService(repo ports.PostRepository, log zerolog.Logger) *PostService {
	return &PostService{repo: repo, log: log}
}

// Create submits a new post in the pending state. Content requirements
// are checked before any store call; the author is fixed from the
// caller's claims and never changes afterwards.
func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	if !domain.Decide(input.Role, domain.ActionCreatePost) {
		return nil, domain.ErrForbidden
	}

	if err := domain.ValidateContent(input.Title, input.Body); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Author:    input.Author,
		Title:     input.Title,
		Body:      input.Body,
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.log.Error().Err(err).Str("author", input.Author).Msg("failed to create post")
		return nil, err
	}

	s.log.Info().Str("post_id", created.ID).Str("author", created.Author).Msg("post created, pending moderation")
	return created, nil
}

// ListAll returns every post regardless of status.
func (s *PostService) ListAll(ctx context.Context, role domain.Role) ([]*domain.Post, error) {
	if !domain.Decide(role, domain.ActionListPosts) {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx, "")
}

// ListPending returns the moderation queue.
func (s *PostService) ListPending(ctx context.Context, role domain.Role) ([]*domain.Post, error) {
	if !domain.Decide(role, domain.ActionListPending) {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx, domain.StatusPending)
}

// Moderate applies an approve/reject decision to a post. Re-moderating a
// terminal item is last-write-wins: the overwrite is logged, not blocked,
// since concurrent moderators are not serialized by the store.
func (s *PostService) Moderate(ctx context.Context, input ports.ModeratePostInput) (*domain.Post, error) {
	if !domain.Decide(input.Role, domain.ActionModeratePost) {
		return nil, domain.ErrForbidden
	}

	post, err := s.repo.FindByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}

	next := domain.StatusApproved
	note := ""
	if !input.IsValid {
		next = domain.StatusRejected
		note = input.Note
		if note == "" {
			note = domain.DefaultRejectionNote
		}
	}

	if !post.Status.CanTransitionTo(next) {
		s.log.Warn().
			Str("post_id", post.ID).
			Str("from", string(post.Status)).
			Str("to", string(next)).
			Str("moderator", input.Moderator).
			Msg("overwriting terminal moderation decision")
	}

	decision := domain.ModerationDecision{
		Status:        next,
		RejectionNote: note,
		ModeratedBy:   input.Moderator,
		ModeratedAt:   time.Now().UTC(),
	}
	if err := s.repo.UpdateModeration(ctx, post.ID, decision); err != nil {
		s.log.Error().Err(err).Str("post_id", post.ID).Msg("failed to apply moderation decision")
		return nil, err
	}

	post.Status = decision.Status
	post.RejectionNote = decision.RejectionNote
	post.ModeratedBy = decision.ModeratedBy
	moderatedAt := decision.ModeratedAt
	post.ModeratedAt = &moderatedAt
	post.UpdatedAt = decision.ModeratedAt

	s.log.Info().
		Str("post_id", post.ID).
		Str("status", string(post.Status)).
		Str("moderator", input.Moderator).
		Msg("post moderated")

	return post, nil
}

// Delete removes a post. The author may delete their own post in any
// state; holders of the delete permission may delete anything.
func (s *PostService) Delete(ctx context.Context, input ports.DeletePostInput) error {
	post, err := s.repo.FindByID(ctx, input.PostID)
	if err != nil {
		return err
	}

	action := domain.ActionDeletePost
	if post.Author == input.Username {
		action = domain.ActionDeleteOwnPost
	}
	if !domain.Decide(input.Role, action) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, post.ID); err != nil {
		s.log.Error().Err(err).Str("post_id", post.ID).Msg("failed to delete post")
		return err
	}

	s.log.Info().Str("post_id", post.ID).Str("deleted_by", input.Username).Msg("post deleted")
	return nil
}
