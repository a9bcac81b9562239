package ports

import (
	"context"

	"github.com/pixelworks/agency-api/internal/core/domain"
)

// PostFilter carries query parameters for listing posts.
type PostFilter struct {
	Published *bool  // nil = no filter; public listings force true
	Tag       string // optional: posts carrying this tag
	Page      int    // 1-based
	Limit     int    // rows per page, capped by the service
}

// PostRepository defines persistence operations for blog posts.
//
// Uniqueness of the slug is ultimately enforced by a unique index in the
// store; Create and Update translate duplicate-key failures to
// domain.ErrSlugTaken.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Post, error)
	// List returns a page of posts sorted by created_at descending plus the
	// total count of matching documents.
	List(ctx context.Context, filter PostFilter) ([]*domain.Post, int64, error)
	Update(ctx context.Context, p *domain.Post) error
	Delete(ctx context.Context, id string) error
}
