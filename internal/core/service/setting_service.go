package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pixelworks/agency-api/internal/core/domain"
	"github.com/pixelworks/agency-api/internal/core/ports"
)

// SettingService implements back-office site configuration.
type SettingService struct {
	repo   ports.SettingRepository
	logger zerolog.Logger
}

func NewSettingService(repo ports.SettingRepository, logger zerolog.Logger) *SettingService {
	return &SettingService{repo: repo, logger: logger}
}

// Put writes a setting. Writes to an existing (category, key) overwrite the
// value in place; the document count never grows for repeated keys.
func (s *SettingService) Put(ctx context.Context, input ports.PutSettingInput) (*domain.Setting, error) {
	if !domain.ValidSettingCategory(input.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, input.Category)
	}
	if input.Key == "" {
		return nil, fmt.Errorf("%w: key is required", domain.ErrInvalidInput)
	}

	setting, err := s.repo.Upsert(ctx, &domain.Setting{
		Category:  input.Category,
		Key:       input.Key,
		Value:     input.Value,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("category", string(setting.Category)).Str("key", setting.Key).Msg("setting written")
	return setting, nil
}

func (s *SettingService) Get(ctx context.Context, category domain.SettingCategory, key string) (*domain.Setting, error) {
	return s.repo.Find(ctx, category, key)
}

func (s *SettingService) List(ctx context.Context, filter ports.SettingFilter) (*ports.SettingPage, error) {
	if filter.Category != "" && !domain.ValidSettingCategory(filter.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, filter.Category)
	}
	filter.Page, filter.Limit = normalizePaging(filter.Page, filter.Limit)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.SettingPage{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func (s *SettingService) Delete(ctx context.Context, category domain.SettingCategory, key string) error {
	return s.repo.Delete(ctx, category, key)
}
