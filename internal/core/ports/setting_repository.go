package ports

import (
	"context"

	"github.com/pixelworks/agency-api/internal/core/domain"
)

// SettingFilter carries query parameters for listing settings.
type SettingFilter struct {
	Category domain.SettingCategory // optional
	Page     int
	Limit    int
}

// SettingRepository defines persistence operations for site settings.
// (category, key) is unique; Upsert overwrites the value in place so repeated
// writes never grow the collection.
type SettingRepository interface {
	Upsert(ctx context.Context, s *domain.Setting) (*domain.Setting, error)
	Find(ctx context.Context, category domain.SettingCategory, key string) (*domain.Setting, error)
	List(ctx context.Context, filter SettingFilter) ([]*domain.Setting, int64, error)
	Delete(ctx context.Context, category domain.SettingCategory, key string) error
}
