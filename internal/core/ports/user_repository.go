package ports

import (
	"context"

	"github.com/pixelworks/agency-api/internal/core/domain"
)

// UserRepository defines persistence operations for back-office accounts.
// Email uniqueness is backed by a unique index; Create and Update translate
// duplicate-key failures to domain.ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, page, limit int) ([]*domain.User, int64, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}
