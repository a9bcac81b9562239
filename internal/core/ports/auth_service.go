package ports

import (
	"context"

	"github.com/pixelworks/agency-api/internal/core/domain"
)

// AuthService implements back-office login.
type AuthService interface {
	// Login verifies credentials and returns a signed session token plus the
	// authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
