package handler

import (
	"time"

	"github.com/pressroom/content-system/internal/core/domain"
)

type createPostRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body"  validate:"required"`
}

// moderateRequest mirrors the wire contract of the validate endpoint.
// IsValid is a pointer so that an absent field fails validation instead
// of silently defaulting to a rejection.
type moderateRequest struct {
	IsValid *bool  `json:"isValid" validate:"required"`
	Note    string `json:"note,omitempty"`
}

type postResponse struct {
	ID            string     `json:"id"`
	Author        string     `json:"author"`
	Title         string     `json:"title"`
	Body          string     `json:"body"`
	Status        string     `json:"status"`
	RejectionNote string     `json:"rejection_note,omitempty"`
	ModeratedBy   string     `json:"moderated_by,omitempty"`
	ModeratedAt   *time.Time `json:"moderated_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:            p.ID,
		Author:        p.Author,
		Title:         p.Title,
		Body:          p.Body,
		Status:        string(p.Status),
		RejectionNote: p.RejectionNote,
		ModeratedBy:   p.ModeratedBy,
		ModeratedAt:   p.ModeratedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toPostResponses(posts []*domain.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	return out
}
