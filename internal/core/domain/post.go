package domain

import (
	"time"
	"unicode/utf8"
)

// PostStatus represents the moderation lifecycle state of a post.
type PostStatus string

const (
	StatusPending  PostStatus = "pending"
	StatusApproved PostStatus = "approved"
	StatusRejected PostStatus = "rejected"
)

// Minimum content lengths, measured in codepoints of the submitted string.
const (
	MinTitleLen = 5
	MinBodyLen  = 20
)

// DefaultRejectionNote is stored when a moderator rejects without comments.
const DefaultRejectionNote = "No comments provided"

// validTransitions defines the moderation state machine. Approved and
// rejected are terminal.
var validTransitions = map[PostStatus][]PostStatus{
	StatusPending: {StatusApproved, StatusRejected},
}

// CanTransitionTo reports whether moving from s to next follows the
// state machine.
func (s PostStatus) CanTransitionTo(next PostStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether s is a final state.
func (s PostStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Post is a piece of user-submitted content. Author is fixed at creation
// and never changes; status is mutated only by the moderation workflow.
type Post struct {
	ID            string     `json:"id"`
	Author        string     `json:"author"`
	Title         string     `json:"title"`
	Body          string     `json:"body"`
	Status        PostStatus `json:"status"`
	RejectionNote string     `json:"rejection_note,omitempty"`
	ModeratedBy   string     `json:"moderated_by,omitempty"`
	ModeratedAt   *time.Time `json:"moderated_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ModerationDecision captures the outcome of a single moderation call,
// applied to the post in one store write.
type ModerationDecision struct {
	Status        PostStatus
	RejectionNote string
	ModeratedBy   string
	ModeratedAt   time.Time
}

// ValidateContent checks the entry requirements for a new post.
// It runs before any store call so invalid posts are never created.
func ValidateContent(title, body string) error {
	if utf8.RuneCountInString(title) < MinTitleLen {
		return ErrTitleTooShort
	}
	if utf8.RuneCountInString(body) < MinBodyLen {
		return ErrBodyTooShort
	}
	return nil
}
