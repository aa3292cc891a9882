package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"school-transport-backend/config"
	"school-transport-backend/models"
)

type RouteRepository interface {
	CreateRoute(ctx context.Context, route *models.Route) (*mongo.InsertOneResult, error)
	GetAllRoutes(ctx context.Context) ([]models.Route, error)
	FindRouteByNumber(ctx context.Context, routeNo string) (*models.Route, error)
	CountDocuments(ctx context.Context, filter bson.M) (int64, error)
}

type routeRepository struct {
	collection *mongo.Collection
}

func NewRouteRepository() RouteRepository {
	return &routeRepository{
		collection: config.GetCollection(config.RouteCollection),
	}
}

func (r *routeRepository) CreateRoute(ctx context.Context, route *models.Route) (*mongo.InsertOneResult, error) {
	route.ID = primitive.NewObjectID()
	route.CreatedAt = time.Now()
	route.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, route)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("route %s already exists", route.RouteNo)
		}
		return nil, fmt.Errorf("failed to create route: %w", err)
	}
	return result, nil
}

func (r *routeRepository) GetAllRoutes(ctx context.Context) ([]models.Route, error) {
	opts := options.Find().SetSort(bson.D{{Key: "routeNo", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query routes: %w", err)
	}
	defer cursor.Close(ctx)

	routes := []models.Route{}
	if err := cursor.All(ctx, &routes); err != nil {
		return nil, fmt.Errorf("failed to decode routes: %w", err)
	}
	return routes, nil
}

func (r *routeRepository) FindRouteByNumber(ctx context.Context, routeNo string) (*models.Route, error) {
	var route models.Route
	err := r.collection.FindOne(ctx, bson.M{"routeNo": routeNo}).Decode(&route)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find route %s: %w", routeNo, err)
	}
	return &route, nil
}

func (r *routeRepository) CountDocuments(ctx context.Context, filter bson.M) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count routes: %w", err)
	}
	return count, nil
}
