package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
)

const collectionSettings = "console_settings"

// SettingsRepository implements ports.SettingsRepository using MongoDB.
type SettingsRepository struct {
	col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{col: db.Collection(collectionSettings)}
}

// FindByUser returns nil, nil when the user has no stored settings.
func (r *SettingsRepository) FindByUser(ctx context.Context, userID string) (*domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Settings
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find settings: %w", err)
	}
	return &s, nil
}

// Upsert replaces the user's settings document, creating it if needed.
func (r *SettingsRepository) Upsert(ctx context.Context, s *domain.Settings) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx, bson.M{"user_id": s.UserID}, s, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique user index on the settings collection.
func (r *SettingsRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
