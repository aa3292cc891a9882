package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var MongoConn *mongo.Client

var DBName = "school-transport-db"

const (
	JobCollection              = "jobs"
	RouteCollection            = "routes"
	InvoiceDraftCollection     = "invoice_drafts"
	GeneratedInvoiceCollection = "generated_invoices"
	SettingsCollection         = "settings"
)

// MongoConnect opens the client and pings the primary.
func MongoConnect(uri, dbName string) error {
	if uri == "" {
		return fmt.Errorf("MONGOSTRING is not set")
	}
	if dbName != "" {
		DBName = dbName
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	slog.Info("connected to MongoDB", "database", DBName)
	MongoConn = client
	return nil
}

func GetCollection(collectionName string) *mongo.Collection {
	if MongoConn == nil {
		panic("MongoDB client is not initialized; call MongoConnect first")
	}
	return MongoConn.Database(DBName).Collection(collectionName)
}

func DisconnectDB() {
	if MongoConn != nil {
		if err := MongoConn.Disconnect(context.Background()); err != nil {
			slog.Error("error disconnecting from MongoDB", "error", err)
			return
		}
		slog.Info("disconnected from MongoDB")
	}
}
