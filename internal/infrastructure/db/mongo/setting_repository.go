package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pixelworks/agency-api/internal/core/domain"
	"github.com/pixelworks/agency-api/internal/core/ports"
)

const collectionSettings = "settings"

type SettingRepository struct {
	col *mongo.Collection
}

func NewSettingRepository(db *mongo.Database) *SettingRepository {
	return &SettingRepository{col: db.Collection(collectionSettings)}
}

type settingDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Category  string             `bson:"category"`
	Key       string             `bson:"key"`
	Value     string             `bson:"value"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *settingDoc) toDomain() *domain.Setting {
	return &domain.Setting{
		ID:        d.ID.Hex(),
		Category:  domain.SettingCategory(d.Category),
		Key:       d.Key,
		Value:     d.Value,
		UpdatedAt: d.UpdatedAt,
	}
}

// Upsert writes the value for (category, key), overwriting in place when the
// pair already exists. The compound unique index keeps concurrent first
// writes from creating two documents; the loser of that race gets a
// duplicate-key error and retries once, landing as an in-place update.
func (r *SettingRepository) Upsert(ctx context.Context, s *domain.Setting) (*domain.Setting, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"category": string(s.Category), "key": s.Key}
	update := bson.M{"$set": bson.M{
		"value":      s.Value,
		"updated_at": s.UpdatedAt,
	}}

	_, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		_, err = r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	}
	if err != nil {
		return nil, fmt.Errorf("upsert setting: %w", err)
	}

	return r.Find(ctx, s.Category, s.Key)
}

func (r *SettingRepository) Find(ctx context.Context, category domain.SettingCategory, key string) (*domain.Setting, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc settingDoc
	err := r.col.FindOne(ctx, bson.M{"category": string(category), "key": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSettingNotFound
		}
		return nil, fmt.Errorf("find setting: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *SettingRepository) List(ctx context.Context, filter ports.SettingFilter) ([]*domain.Setting, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = string(filter.Category)
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count settings: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "category", Value: 1}, {Key: "key", Value: 1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list settings: %w", err)
	}
	defer cur.Close(ctx)

	var settings []*domain.Setting
	for cur.Next(ctx) {
		var doc settingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode setting: %w", err)
		}
		settings = append(settings, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list settings: %w", err)
	}
	return settings, total, nil
}

func (r *SettingRepository) Delete(ctx context.Context, category domain.SettingCategory, key string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"category": string(category), "key": key})
	if err != nil {
		return fmt.Errorf("delete setting: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSettingNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the settings collection.
func (r *SettingRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
