package mongodb

import (
	"context"
	"fmt"
	"time"

	"citytransit/internal/models"
	"citytransit/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type journeyRepository struct {
	collection *mongo.Collection
}

func NewJourneyRepository(db *mongo.Database) interfaces.JourneyRepository {
	return &journeyRepository{
		collection: db.Collection("journeys"),
	}
}

func (r *journeyRepository) Create(ctx context.Context, journey *models.Journey) error {
	if journey.ID.IsZero() {
		journey.ID = primitive.NewObjectID()
	}
	journey.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, journey)
	if err != nil {
		return fmt.Errorf("failed to create journey: %w", err)
	}

	return nil
}

func (r *journeyRepository) ListByUser(ctx context.Context, userID string) ([]*models.Journey, error) {
	cursor, err := r.collection.Find(
		ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list journeys: %w", err)
	}
	defer cursor.Close(ctx)

	var journeys []*models.Journey
	if err := cursor.All(ctx, &journeys); err != nil {
		return nil, fmt.Errorf("failed to decode journeys: %w", err)
	}

	return journeys, nil
}
