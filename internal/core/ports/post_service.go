package ports

import (
	"context"

	"github.com/pixelworks/agency-api/internal/core/domain"
)

// CreatePostInput carries all data needed to create a blog post. When Slug is
// empty one is derived from the title.
type CreatePostInput struct {
	Title       string
	Slug        string
	Content     string
	Excerpt     string
	Tags        []string
	Published   bool
	AuthorEmail string
	AuthorName  string
}

// UpdatePostInput is a partial update: nil fields are left untouched.
type UpdatePostInput struct {
	Title     *string
	Slug      *string
	Content   *string
	Excerpt   *string
	Tags      []string
	Published *bool
}

// ListPostsInput carries the parameters for the list endpoints.
type ListPostsInput struct {
	Published *bool
	Tag       string
	Page      int
	Limit     int
}

// PostPage is a single page of posts plus pagination metadata.
type PostPage struct {
	Items      []*domain.Post
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// PostService defines use-case operations for blog posts.
type PostService interface {
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	// GetPublished resolves a slug to a published post; drafts behave as absent.
	GetPublished(ctx context.Context, slug string) (*domain.Post, error)
	List(ctx context.Context, input ListPostsInput) (*PostPage, error)
	Update(ctx context.Context, id string, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}
