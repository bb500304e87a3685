package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pressroom/content-system/internal/core/domain"
	"github.com/pressroom/content-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubPostRepo struct {
	posts  map[string]*domain.Post
	nextID int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	r.nextID++
	clone := *post
	clone.ID = fmt.Sprintf("post-%d", r.nextID)
	r.posts[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) List(_ context.Context, status domain.PostStatus) ([]*domain.Post, error) {
	var out []*domain.Post
	for _, p := range r.posts {
		if status != "" && p.Status != status {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubPostRepo) UpdateModeration(_ context.Context, id string, decision domain.ModerationDecision) error {
	p, ok := r.posts[id]
	if !ok {
		return domain.ErrPostNotFound
	}
	p.Status = decision.Status
	p.RejectionNote = decision.RejectionNote
	p.ModeratedBy = decision.ModeratedBy
	moderatedAt := decision.ModeratedAt
	p.ModeratedAt = &moderatedAt
	p.UpdatedAt = decision.ModeratedAt
	return nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var validBody = strings.Repeat("b", domain.MinBodyLen)

func newTestPostService(repo *stubPostRepo) *PostService {
	return NewPostService(repo, zerolog.Nop())
}

func createPending(t *testing.T, svc *PostService, author string) *domain.Post {
	t.Helper()
	post, err := svc.Create(context.Background(), ports.CreatePostInput{
		Author: author,
		Role:   domain.RoleUser,
		Title:  "valid title",
		Body:   validBody,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestPostService_Create_Success(t *testing.T) {
	repo := newStubPostRepo()
	svc := newTestPostService(repo)

	post, err := svc.Create(context.Background(), ports.CreatePostInput{
		Author: "alice",
		Role:   domain.RoleUser,
		Title:  "abcde", // exactly the minimum
		Body:   validBody,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if post.Status != domain.StatusPending {
		t.Fatalf("new post must be pending, got %s", post.Status)
	}
	if post.Author != "alice" {
		t.Fatalf("author not fixed from claims: %s", post.Author)
	}
	if post.ID == "" {
		t.Fatalf("expected assigned id")
	}
}

func TestPostService_Create_TitleBoundary(t *testing.T) {
	svc := newTestPostService(newStubPostRepo())

	_, err := svc.Create(context.Background(), ports.CreatePostInput{
		Author: "alice",
		Role:   domain.RoleUser,
		Title:  "abcd", // one short
		Body:   validBody,
	})
	if err != domain.ErrTitleTooShort {
		t.Fatalf("expected ErrTitleTooShort, got %v", err)
	}
}

func TestPostService_Create_BodyBoundary(t *testing.T) {
	repo := newStubPostRepo()
	svc := newTestPostService(repo)

	_, err := svc.Create(context.Background(), ports.CreatePostInput{
		Author: "alice",
		Role:   domain.RoleUser,
		Title:  "valid title",
		Body:   strings.Repeat("b", domain.MinBodyLen-1),
	})
	if err != domain.ErrBodyTooShort {
		t.Fatalf("expected ErrBodyTooShort, got %v", err)
	}
	if len(repo.posts) != 0 {
		t.Fatalf("invalid post must not be created")
	}
}

func TestPostService_Create_UnknownRoleForbidden(t *testing.T) {
	svc := newTestPostService(newStubPostRepo())

	_, err := svc.Create(context.Background(), ports.CreatePostInput{
		Author: "intruder",
		Role:   domain.Role("ghost"),
		Title:  "valid title",
		Body:   validBody,
	})
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Moderate
// ---------------------------------------------------------------------------

func TestPostService_Moderate_Approve(t *testing.T) {
	repo := newStubPostRepo()
	svc := newTestPostService(repo)
	post := createPending(t, svc, "alice")

	moderated, err := svc.Moderate(context.Background(), ports.ModeratePostInput{
		PostID:    post.ID,
		Moderator: "mod",
		Role:      domain.RoleModerator,
		IsValid:   true,
	})
	if err != nil {
		t.Fatalf("Moderate returned error: %v", err)
	}
	if moderated.Status != domain.StatusApproved {
		t.Fatalf("expected approved, got %s", moderated.Status)
	}
	if moderated.RejectionNote != "" {
		t.Fatalf("approved post must carry no rejection note")
	}
	if moderated.ModeratedBy != "mod" {
		t.Fatalf("expected moderator attribution, got %q", moderated.ModeratedBy)
	}
}

func TestPostService_Moderate_RejectWithNote(t *testing.T) {
	repo := newStubPostRepo()
	svc := newTestPostService(repo)
	post := createPending(t, svc, "alice")

	moderated, err := svc.Moderate(context.Background(), ports.ModeratePostInput{
		PostID:    post.ID,
		Moderator: "mod",
		Role:      domain.RoleModerator,
		IsValid:   false,
		Note:      "spam",
	})
	if err != nil {
		t.Fatalf("Moderate returned error: %v", err)
	}
	if moderated.Status != domain.StatusRejected {
		t.Fatalf("expected rejected, got %s", moderated.Status)
	}
	if moderated.RejectionNote != "spam" {
		t.Fatalf("expected note %q, got %q", "spam", moderated.RejectionNote)
	}
}

func TestPostService_Moderate_RejectDefaultNote(t *testing.T) {
	repo := newStubPostRepo()
	svc := newTestPostService(repo)
	post := createPending(t, svc, "alice")

	moderated, err := svc.Moderate(context.Background(), ports.ModeratePostInput{
		PostID:    post.ID,
		Moderator: "mod",
		Role:      domain.RoleModerator,
		IsValid:   false,
	})
	if err != nil {
		t.Fatalf("Moderate returned error: %v", err)
	}
	if moderated.RejectionNote != domain.DefaultRejectionNote {
		t.Fatalf("expected default note, got %q", moderated.RejectionNote)
	}
}

func TestPostService_Moderate_ForbiddenRoles(t *testing.T) {
	repo := newStubPostRepo()
	svc := newTestPostService(repo)
	post := createPending(t, svc, "alice")

	for _, role := range []domain.Role{domain.RoleUser, domain.RoleAdmin} {
		_, err := svc.Moderate(context.Background(), ports.ModeratePostInput{
			PostID:    post.ID,
			Moderator: "someone",
			Role:      role,
			IsValid:   true,
		})
		if err != domain.ErrForbidden {
			t.Fatalf("role %s: expected ErrForbidden, got %v", role, err)
		}
	}

	// Status must be unchanged after denied attempts.
	stored, _ := repo.FindByID(context.Background(), post.ID)
	if stored.Status != domain.StatusPending {
		t.Fatalf("denied moderation must not change status, got %s", stored.Status)
	}
}

func TestPostService_Moderate_NotFound(t *testing.T) {
	svc := newTestPostService(newStubPostRepo())

	_, err := svc.Moderate(context.Background(), ports.ModeratePostInput{
		PostID:    "missing",
		Moderator: "mod",
		Role:      domain.RoleModerator,
		IsValid:   true,
	})
	if err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_Moderate_TerminalLastWriteWins(t *testing.T) {
	repo := newStubPostRepo()
	svc := newTestPostService(repo)
	post := createPending(t, svc, "alice")

	if _, err := svc.Moderate(context.Background(), ports.ModeratePostInput{
		PostID: post.ID, Moderator: "mod1", Role: domain.RoleModerator, IsValid: true,
	}); err != nil {
		t.Fatalf("first decision failed: %v", err)
	}

	// A second decision on a terminal item overwrites it.
	moderated, err := svc.Moderate(context.Background(), ports.ModeratePostInput{
		PostID: post.ID, Moderator: "mod2", Role: domain.RoleModerator, IsValid: false, Note: "changed my mind",
	})
	if err != nil {
		t.Fatalf("second decision failed: %v", err)
	}
	if moderated.Status != domain.StatusRejected || moderated.ModeratedBy != "mod2" {
		t.Fatalf("last write must win, got %s by %s", moderated.Status, moderated.ModeratedBy)
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestPostService_Delete_OwnershipMatrix(t *testing.T) {
	cases := []struct {
		name     string
		author   string
		caller   string
		role     domain.Role
		expected error
	}{
		{"author user deletes own", "alice", "alice", domain.RoleUser, nil},
		{"author moderator deletes own", "mod", "mod", domain.RoleModerator, nil},
		{"admin deletes any", "alice", "root", domain.RoleAdmin, nil},
		{"moderator cannot delete others", "alice", "mod", domain.RoleModerator, domain.ErrForbidden},
		{"user cannot delete others", "alice", "bob", domain.RoleUser, domain.ErrForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newStubPostRepo()
			svc := newTestPostService(repo)
			post := createPending(t, svc, tc.author)

			err := svc.Delete(context.Background(), ports.DeletePostInput{
				PostID:   post.ID,
				Username: tc.caller,
				Role:     tc.role,
			})
			if !errors.Is(err, tc.expected) && err != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, err)
			}

			_, findErr := repo.FindByID(context.Background(), post.ID)
			if tc.expected == nil && findErr != domain.ErrPostNotFound {
				t.Fatalf("post should be gone, got %v", findErr)
			}
			if tc.expected != nil && findErr != nil {
				t.Fatalf("post should survive a forbidden delete, got %v", findErr)
			}
		})
	}
}

func TestPostService_Delete_TerminalState(t *testing.T) {
	repo := newStubPostRepo()
	svc := newTestPostService(repo)
	post := createPending(t, svc, "alice")

	if _, err := svc.Moderate(context.Background(), ports.ModeratePostInput{
		PostID: post.ID, Moderator: "mod", Role: domain.RoleModerator, IsValid: false,
	}); err != nil {
		t.Fatalf("moderate failed: %v", err)
	}

	// Deletion is allowed from terminal states too.
	if err := svc.Delete(context.Background(), ports.DeletePostInput{
		PostID: post.ID, Username: "alice", Role: domain.RoleUser,
	}); err != nil {
		t.Fatalf("author delete of rejected post failed: %v", err)
	}
}

func TestPostService_Delete_NotFound(t *testing.T) {
	svc := newTestPostService(newStubPostRepo())

	err := svc.Delete(context.Background(), ports.DeletePostInput{
		PostID: "missing", Username: "alice", Role: domain.RoleAdmin,
	})
	if err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Listing
// ---------------------------------------------------------------------------

func TestPostService_Listing(t *testing.T) {
	repo := newStubPostRepo()
	svc := newTestPostService(repo)

	first := createPending(t, svc, "alice")
	createPending(t, svc, "bob")

	if _, err := svc.Moderate(context.Background(), ports.ModeratePostInput{
		PostID: first.ID, Moderator: "mod", Role: domain.RoleModerator, IsValid: true,
	}); err != nil {
		t.Fatalf("moderate failed: %v", err)
	}

	all, err := svc.ListAll(context.Background(), domain.RoleUser)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(all))
	}

	pending, err := svc.ListPending(context.Background(), domain.RoleModerator)
	if err != nil {
		t.Fatalf("ListPending returned error: %v", err)
	}
	if len(pending) != 1 || pending[0].Status != domain.StatusPending {
		t.Fatalf("expected 1 pending post, got %+v", pending)
	}

	// Admins may view the queue; plain users may not.
	if _, err := svc.ListPending(context.Background(), domain.RoleAdmin); err != nil {
		t.Fatalf("admin must see the pending queue: %v", err)
	}
	if _, err := svc.ListPending(context.Background(), domain.RoleUser); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for user, got %v", err)
	}
}
