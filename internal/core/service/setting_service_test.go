package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pixelworks/agency-api/internal/core/domain"
	"github.com/pixelworks/agency-api/internal/core/ports"
)

type stubSettingRepo struct {
	byKey map[string]*domain.Setting // "category/key"
}

func newStubSettingRepo() *stubSettingRepo {
	return &stubSettingRepo{byKey: make(map[string]*domain.Setting)}
}

func settingKey(category domain.SettingCategory, key string) string {
	return string(category) + "/" + key
}

func (r *stubSettingRepo) Upsert(_ context.Context, s *domain.Setting) (*domain.Setting, error) {
	clone := *s
	r.byKey[settingKey(s.Category, s.Key)] = &clone
	out := clone
	return &out, nil
}

func (r *stubSettingRepo) Find(_ context.Context, category domain.SettingCategory, key string) (*domain.Setting, error) {
	s, ok := r.byKey[settingKey(category, key)]
	if !ok {
		return nil, domain.ErrSettingNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSettingRepo) List(_ context.Context, f ports.SettingFilter) ([]*domain.Setting, int64, error) {
	var matched []*domain.Setting
	for _, s := range r.byKey {
		if f.Category != "" && s.Category != f.Category {
			continue
		}
		clone := *s
		matched = append(matched, &clone)
	}
	return matched, int64(len(matched)), nil
}

func (r *stubSettingRepo) Delete(_ context.Context, category domain.SettingCategory, key string) error {
	k := settingKey(category, key)
	if _, ok := r.byKey[k]; !ok {
		return domain.ErrSettingNotFound
	}
	delete(r.byKey, k)
	return nil
}

func TestSettingService_Put_UpsertsInPlace(t *testing.T) {
	repo := newStubSettingRepo()
	svc := NewSettingService(repo, discardLogger)

	first, err := svc.Put(context.Background(), ports.PutSettingInput{
		Category: domain.SettingGeneral,
		Key:      "site_title",
		Value:    "Pixelworks",
	})
	if err != nil {
		t.Fatalf("first put failed: %v", err)
	}
	if first.Value != "Pixelworks" {
		t.Errorf("unexpected value %q", first.Value)
	}

	second, err := svc.Put(context.Background(), ports.PutSettingInput{
		Category: domain.SettingGeneral,
		Key:      "site_title",
		Value:    "Pixelworks Studio",
	})
	if err != nil {
		t.Fatalf("second put failed: %v", err)
	}
	if second.Value != "Pixelworks Studio" {
		t.Errorf("second write must win, got %q", second.Value)
	}
	if len(repo.byKey) != 1 {
		t.Errorf("repeated writes must not grow the collection, got %d documents", len(repo.byKey))
	}
}

func TestSettingService_Put_UnknownCategory(t *testing.T) {
	svc := NewSettingService(newStubSettingRepo(), discardLogger)

	_, err := svc.Put(context.Background(), ports.PutSettingInput{
		Category: "branding",
		Key:      "logo",
		Value:    "x",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSettingService_Put_MissingKey(t *testing.T) {
	svc := NewSettingService(newStubSettingRepo(), discardLogger)

	_, err := svc.Put(context.Background(), ports.PutSettingInput{Category: domain.SettingSEO})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSettingService_Get_NotFound(t *testing.T) {
	svc := NewSettingService(newStubSettingRepo(), discardLogger)

	_, err := svc.Get(context.Background(), domain.SettingGeneral, "missing")
	if !errors.Is(err, domain.ErrSettingNotFound) {
		t.Fatalf("expected ErrSettingNotFound, got %v", err)
	}
}

func TestSettingService_List_FiltersByCategory(t *testing.T) {
	repo := newStubSettingRepo()
	svc := NewSettingService(repo, discardLogger)

	_, _ = svc.Put(context.Background(), ports.PutSettingInput{Category: domain.SettingGeneral, Key: "site_title", Value: "x"})
	_, _ = svc.Put(context.Background(), ports.PutSettingInput{Category: domain.SettingSEO, Key: "meta_description", Value: "y"})

	page, err := svc.List(context.Background(), ports.SettingFilter{Category: domain.SettingSEO})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 1 || len(page.Items) != 1 {
		t.Fatalf("expected exactly the seo setting, got total=%d items=%d", page.Total, len(page.Items))
	}
	if page.Items[0].Key != "meta_description" {
		t.Errorf("unexpected item %q", page.Items[0].Key)
	}
}

func TestSettingService_List_UnknownCategory(t *testing.T) {
	svc := NewSettingService(newStubSettingRepo(), discardLogger)

	_, err := svc.List(context.Background(), ports.SettingFilter{Category: "branding"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSettingService_Delete_NotFound(t *testing.T) {
	svc := NewSettingService(newStubSettingRepo(), discardLogger)

	err := svc.Delete(context.Background(), domain.SettingGeneral, "missing")
	if !errors.Is(err, domain.ErrSettingNotFound) {
		t.Fatalf("expected ErrSettingNotFound, got %v", err)
	}
}
