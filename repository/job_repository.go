package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"school-transport-backend/config"
	"school-transport-backend/models"
)

type JobRepository interface {
	FindByMonth(ctx context.Context, year, month int) ([]models.Job, error)
	InsertMany(ctx context.Context, jobs []models.Job) error
	CountDocuments(ctx context.Context, filter bson.M) (int64, error)
}

type jobRepository struct {
	collection *mongo.Collection
}

func NewJobRepository() JobRepository {
	return &jobRepository{
		collection: config.GetCollection(config.JobCollection),
	}
}

// FindByMonth returns the jobs recorded for a month, ordered by route.
func (r *jobRepository) FindByMonth(ctx context.Context, year, month int) ([]models.Job, error) {
	filter := bson.M{"year": year, "month": month}
	opts := options.Find().SetSort(bson.D{{Key: "routeNo", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs for %04d-%02d: %w", year, month, err)
	}
	defer cursor.Close(ctx)

	jobs := []models.Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("failed to decode jobs: %w", err)
	}
	return jobs, nil
}

func (r *jobRepository) InsertMany(ctx context.Context, jobs []models.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	docs := make([]interface{}, len(jobs))
	for i := range jobs {
		docs[i] = jobs[i]
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert jobs: %w", err)
	}
	return nil
}

func (r *jobRepository) CountDocuments(ctx context.Context, filter bson.M) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return count, nil
}
