package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"school-transport-backend/config"
	"school-transport-backend/models"
)

type SettingsRepository interface {
	GetJobView(ctx context.Context) (*models.JobViewSettings, error)
	SaveJobView(ctx context.Context, columns []string) (*models.JobViewSettings, error)
}

type settingsRepository struct {
	collection *mongo.Collection
}

func NewSettingsRepository() SettingsRepository {
	return &settingsRepository{
		collection: config.GetCollection(config.SettingsCollection),
	}
}

func (r *settingsRepository) GetJobView(ctx context.Context) (*models.JobViewSettings, error) {
	var settings models.JobViewSettings
	err := r.collection.FindOne(ctx, bson.M{"key": models.JobViewSettingsKey}).Decode(&settings)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load job view settings: %w", err)
	}
	return &settings, nil
}

func (r *settingsRepository) SaveJobView(ctx context.Context, columns []string) (*models.JobViewSettings, error) {
	settings := &models.JobViewSettings{
		Key:       models.JobViewSettingsKey,
		Columns:   columns,
		UpdatedAt: time.Now(),
	}

	_, err := r.collection.UpdateOne(ctx,
		bson.M{"key": models.JobViewSettingsKey},
		bson.M{"$set": settings},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save job view settings: %w", err)
	}
	return settings, nil
}
