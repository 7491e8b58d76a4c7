package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tuberev/internal/core/domain"
	"tuberev/internal/core/ports"
)

const statusCollection = "status_checks"

type mongoStatusRepository struct {
	collection *mongo.Collection
}

// NewMongoClient connects to the document store and verifies the connection.
func NewMongoClient(ctx context.Context, mongoURL string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		return nil, fmt.Errorf("error while connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("error while pinging mongodb: %w", err)
	}

	return client, nil
}

func NewMongoStatusRepository(client *mongo.Client, dbName string) ports.StatusRepositoryPort {
	return &mongoStatusRepository{
		collection: client.Database(dbName).Collection(statusCollection),
	}
}

func (r *mongoStatusRepository) Insert(ctx context.Context, check domain.StatusCheck) error {
	// Timestamps are stored as RFC3339 strings, not native dates.
	doc := bson.M{
		"id":          check.ID,
		"client_name": check.ClientName,
		"timestamp":   check.Timestamp.Format(time.RFC3339Nano),
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error while inserting status check: %w", err)
	}

	return nil
}

func (r *mongoStatusRepository) List(ctx context.Context, limit int64) ([]domain.StatusCheck, error) {
	opts := options.Find().
		SetLimit(limit).
		SetProjection(bson.M{"_id": 0})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error while querying status checks: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID         string `bson:"id"`
		ClientName string `bson:"client_name"`
		Timestamp  string `bson:"timestamp"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error while decoding status checks: %w", err)
	}

	checks := make([]domain.StatusCheck, 0, len(docs))
	for _, doc := range docs {
		check := domain.StatusCheck{ID: doc.ID, ClientName: doc.ClientName}
		if ts, err := time.Parse(time.RFC3339Nano, doc.Timestamp); err == nil {
			check.Timestamp = ts
		}
		checks = append(checks, check)
	}

	return checks, nil
}
