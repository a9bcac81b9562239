package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pixelworks/agency-api/internal/core/domain"
	"github.com/pixelworks/agency-api/internal/core/ports"
	"github.com/pixelworks/agency-api/internal/metrics"
)

// PostService implements blog post use cases on top of PostRepository.
type PostService struct {
	repo   ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, logger: logger}
}

// Create inserts a new post. An empty slug is derived from the title. The
// slug pre-check is a fast path only: the unique index behind the repository
// is the authority, and a duplicate-key insert still surfaces ErrSlugTaken.
func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	if input.Title == "" || input.Content == "" {
		return nil, fmt.Errorf("%w: title and content are required", domain.ErrInvalidInput)
	}

	slug := input.Slug
	if slug == "" {
		slug = domain.Slugify(input.Title)
	}
	if !domain.ValidSlug(slug) {
		return nil, fmt.Errorf("%w: slug must contain only lowercase letters, digits and hyphens", domain.ErrInvalidInput)
	}

	if _, err := s.repo.FindBySlug(ctx, slug); err == nil {
		return nil, domain.ErrSlugTaken
	} else if !errors.Is(err, domain.ErrPostNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Title:       input.Title,
		Slug:        slug,
		Content:     input.Content,
		Excerpt:     input.Excerpt,
		Tags:        input.Tags,
		Published:   input.Published,
		AuthorEmail: input.AuthorEmail,
		AuthorName:  input.AuthorName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Published {
		post.PublishedAt = &now
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	if created.Published {
		metrics.PostsPublishedTotal.Inc()
	}
	s.logger.Info().Str("slug", created.Slug).Bool("published", created.Published).Msg("post created")
	return created, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

// GetPublished resolves a slug for the public site; unpublished posts are
// indistinguishable from missing ones.
func (s *PostService) GetPublished(ctx context.Context, slug string) (*domain.Post, error) {
	post, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, domain.ErrPostNotFound
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context, input ports.ListPostsInput) (*ports.PostPage, error) {
	page, limit := normalizePaging(input.Page, input.Limit)

	items, total, err := s.repo.List(ctx, ports.PostFilter{
		Published: input.Published,
		Tag:       input.Tag,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.PostPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// Update applies a partial update. PublishedAt is set exactly once, on the
// first transition to published; unpublishing keeps the original timestamp.
func (s *PostService) Update(ctx context.Context, id string, input ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrInvalidInput)
		}
		post.Title = *input.Title
	}
	if input.Slug != nil && *input.Slug != post.Slug {
		if !domain.ValidSlug(*input.Slug) {
			return nil, fmt.Errorf("%w: slug must contain only lowercase letters, digits and hyphens", domain.ErrInvalidInput)
		}
		if existing, err := s.repo.FindBySlug(ctx, *input.Slug); err == nil && existing.ID != id {
			return nil, domain.ErrSlugTaken
		} else if err != nil && !errors.Is(err, domain.ErrPostNotFound) {
			return nil, err
		}
		post.Slug = *input.Slug
	}
	if input.Content != nil {
		if *input.Content == "" {
			return nil, fmt.Errorf("%w: content cannot be empty", domain.ErrInvalidInput)
		}
		post.Content = *input.Content
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.Tags != nil {
		post.Tags = input.Tags
	}
	if input.Published != nil {
		if *input.Published && !post.Published {
			if post.PublishedAt == nil {
				now := time.Now().UTC()
				post.PublishedAt = &now
			}
			metrics.PostsPublishedTotal.Inc()
		}
		post.Published = *input.Published
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("id", id).Msg("post deleted")
	return nil
}
