package ports

import (
	"context"

	"github.com/pixelworks/agency-api/internal/core/domain"
)

// CreateUserInput carries all data for admin-driven account creation.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput is a partial update: nil fields are left untouched.
// Password, when set, is re-hashed.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
}

// UserPage is a single page of users plus pagination metadata.
type UserPage struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UserService defines admin-only account management.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	List(ctx context.Context, page, limit int) (*UserPage, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	// Delete refuses when actorEmail addresses the account being removed.
	Delete(ctx context.Context, id, actorEmail string) error
}
