package mongo

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/pixelworks/agency-api/internal/core/domain"
)

// Two concurrent first writes to the same (category, key) race the upsert:
// the loser hits the compound unique index and must retry as an in-place
// update instead of surfacing a duplicate-key error.
func TestSettingRepository_Upsert_RetriesRacedFirstWrite(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate key on first attempt", func(mt *mtest.T) {
		now := time.Now().UTC().Truncate(time.Millisecond)
		ns := mt.DB.Name() + "." + collectionSettings
		mt.AddMockResponses(
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error collection: settings index: category_1_key_1",
			}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "category", Value: "general"},
				{Key: "key", Value: "site_title"},
				{Key: "value", Value: "Pixelworks"},
				{Key: "updated_at", Value: now},
			}),
		)

		repo := NewSettingRepository(mt.DB)
		setting, err := repo.Upsert(context.Background(), &domain.Setting{
			Category:  domain.SettingGeneral,
			Key:       "site_title",
			Value:     "Pixelworks",
			UpdatedAt: now,
		})
		if err != nil {
			mt.Fatalf("raced upsert must succeed on retry: %v", err)
		}
		if setting.Value != "Pixelworks" {
			mt.Errorf("unexpected value %q", setting.Value)
		}

		updates := 0
		for _, evt := range mt.GetAllStartedEvents() {
			if evt.CommandName == "update" {
				updates++
			}
		}
		if updates != 2 {
			mt.Errorf("expected 2 update attempts, got %d", updates)
		}
	})

	mt.Run("clean upsert does not retry", func(mt *mtest.T) {
		now := time.Now().UTC().Truncate(time.Millisecond)
		ns := mt.DB.Name() + "." + collectionSettings
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "category", Value: "seo"},
				{Key: "key", Value: "meta_description"},
				{Key: "value", Value: "We build websites."},
				{Key: "updated_at", Value: now},
			}),
		)

		repo := NewSettingRepository(mt.DB)
		if _, err := repo.Upsert(context.Background(), &domain.Setting{
			Category:  domain.SettingSEO,
			Key:       "meta_description",
			Value:     "We build websites.",
			UpdatedAt: now,
		}); err != nil {
			mt.Fatalf("upsert failed: %v", err)
		}

		updates := 0
		for _, evt := range mt.GetAllStartedEvents() {
			if evt.CommandName == "update" {
				updates++
			}
		}
		if updates != 1 {
			mt.Errorf("expected 1 update attempt, got %d", updates)
		}
	})
}
