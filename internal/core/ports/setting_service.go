package ports

import (
	"context"

	"github.com/pixelworks/agency-api/internal/core/domain"
)

// PutSettingInput carries a single setting write.
type PutSettingInput struct {
	Category domain.SettingCategory
	Key      string
	Value    string
}

// SettingPage is a single page of settings plus pagination metadata.
type SettingPage struct {
	Items      []*domain.Setting
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// SettingService defines back-office operations on site settings.
type SettingService interface {
	Put(ctx context.Context, input PutSettingInput) (*domain.Setting, error)
	Get(ctx context.Context, category domain.SettingCategory, key string) (*domain.Setting, error)
	List(ctx context.Context, filter SettingFilter) (*SettingPage, error)
	Delete(ctx context.Context, category domain.SettingCategory, key string) error
}
