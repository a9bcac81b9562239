package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pixelworks/agency-api/internal/core/domain"
	"github.com/pixelworks/agency-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubPostRepo struct {
	byID    map[string]*domain.Post
	nextID  int
	listErr error
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{byID: make(map[string]*domain.Post)}
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) (*domain.Post, error) {
	// Mirrors the unique index: duplicate slug is rejected even when the
	// service pre-check was raced.
	for _, existing := range r.byID {
		if existing.Slug == p.Slug {
			return nil, domain.ErrSlugTaken
		}
	}
	r.nextID++
	clone := *p
	clone.ID = fmt.Sprintf("id-%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) FindBySlug(_ context.Context, slug string) (*domain.Post, error) {
	for _, p := range r.byID {
		if p.Slug == slug {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrPostNotFound
}

func (r *stubPostRepo) List(_ context.Context, f ports.PostFilter) ([]*domain.Post, int64, error) {
	if r.listErr != nil {
		return nil, 0, r.listErr
	}

	var matched []*domain.Post
	for _, p := range r.byID {
		if f.Published != nil && p.Published != *f.Published {
			continue
		}
		if f.Tag != "" && !hasTag(p.Tags, f.Tag) {
			continue
		}
		clone := *p
		matched = append(matched, &clone)
	}

	total := int64(len(matched))
	skip := (f.Page - 1) * f.Limit
	if skip >= len(matched) {
		return nil, total, nil
	}
	end := skip + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func (r *stubPostRepo) Update(_ context.Context, p *domain.Post) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrPostNotFound
	}
	for id, existing := range r.byID {
		if id != p.ID && existing.Slug == p.Slug {
			return domain.ErrSlugTaken
		}
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.byID, id)
	return nil
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestPostService_Create_DerivesSlugFromTitle(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, discardLogger)

	post, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title:   "Ett Café, Deux Croissants!",
		Content: "body",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.Slug != "ett-cafe-deux-croissants" {
		t.Errorf("unexpected derived slug %q", post.Slug)
	}
}

func TestPostService_Create_DuplicateSlugConflict(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, discardLogger)

	if _, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title: "Hello World", Content: "first",
	}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	// Different content, same slug: must conflict.
	_, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title: "Other Title", Slug: "hello-world", Content: "second",
	})
	if !errors.Is(err, domain.ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Errorf("expected 1 stored post, got %d", len(repo.byID))
	}
}

func TestPostService_Create_MissingFields(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), discardLogger)

	_, err := svc.Create(context.Background(), ports.CreatePostInput{Title: "No content"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPostService_Create_PublishedSetsPublishedAt(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), discardLogger)

	draft, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title: "Draft", Content: "x",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if draft.PublishedAt != nil {
		t.Error("draft must not carry published_at")
	}

	live, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title: "Live", Content: "x", Published: true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if live.PublishedAt == nil {
		t.Error("published post must carry published_at")
	}
}

// ---------------------------------------------------------------------------
// Update tests
// ---------------------------------------------------------------------------

func TestPostService_Update_PublishTransitionSetsTimestampOnce(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, discardLogger)

	post, _ := svc.Create(context.Background(), ports.CreatePostInput{Title: "P", Content: "x"})

	published := true
	updated, err := svc.Update(context.Background(), post.ID, ports.UpdatePostInput{Published: &published})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if updated.PublishedAt == nil {
		t.Fatal("publishing must set published_at")
	}
	first := *updated.PublishedAt

	unpublished := false
	if _, err := svc.Update(context.Background(), post.ID, ports.UpdatePostInput{Published: &unpublished}); err != nil {
		t.Fatalf("unpublish failed: %v", err)
	}
	again, err := svc.Update(context.Background(), post.ID, ports.UpdatePostInput{Published: &published})
	if err != nil {
		t.Fatalf("republish failed: %v", err)
	}
	if !again.PublishedAt.Equal(first) {
		t.Errorf("republish must keep original published_at: got %v, want %v", again.PublishedAt, first)
	}
}

func TestPostService_Update_SlugConflict(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, discardLogger)

	_, _ = svc.Create(context.Background(), ports.CreatePostInput{Title: "First", Content: "x"})
	second, _ := svc.Create(context.Background(), ports.CreatePostInput{Title: "Second", Content: "x"})

	slug := "first"
	_, err := svc.Update(context.Background(), second.ID, ports.UpdatePostInput{Slug: &slug})
	if !errors.Is(err, domain.ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
}

func TestPostService_Update_NotFound(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), discardLogger)

	_, err := svc.Update(context.Background(), "missing", ports.UpdatePostInput{})
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// List / Get tests
// ---------------------------------------------------------------------------

func TestPostService_List_Pagination(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, discardLogger)

	for i := 0; i < 12; i++ {
		_, err := svc.Create(context.Background(), ports.CreatePostInput{
			Title:   fmt.Sprintf("Post %d", i),
			Content: "x",
		})
		if err != nil {
			t.Fatalf("seed %d failed: %v", i, err)
		}
	}

	page, err := svc.List(context.Background(), ports.ListPostsInput{Page: 2, Limit: 5})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page.Items) > 5 {
		t.Errorf("page must hold at most 5 items, got %d", len(page.Items))
	}
	if page.Total != 12 {
		t.Errorf("expected total 12, got %d", page.Total)
	}
	if page.TotalPages != 3 {
		t.Errorf("expected totalPages ceil(12/5)=3, got %d", page.TotalPages)
	}
}

func TestPostService_List_Defaults(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), discardLogger)

	page, err := svc.List(context.Background(), ports.ListPostsInput{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Page != 1 || page.Limit != 10 {
		t.Errorf("expected defaults page=1 limit=10, got page=%d limit=%d", page.Page, page.Limit)
	}
}

func TestPostService_GetPublished_HidesDrafts(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, discardLogger)

	_, _ = svc.Create(context.Background(), ports.CreatePostInput{Title: "Draft Post", Content: "x"})

	_, err := svc.GetPublished(context.Background(), "draft-post")
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("draft must read as not found, got %v", err)
	}
}

func TestPostService_Delete_NotFound(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), discardLogger)

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
