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

type ticketRepository struct {
	collection *mongo.Collection
}

func NewTicketRepository(db *mongo.Database) interfaces.TicketRepository {
	return &ticketRepository{
		collection: db.Collection("tickets"),
	}
}

// EnsureTicketIndexes creates the unique index that enforces redemption
// code uniqueness at the storage boundary.
func EnsureTicketIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("tickets").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "redemption_code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "valid_until", Value: -1}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create ticket indexes: %w", err)
	}
	return nil
}

func (r *ticketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	if ticket.ID.IsZero() {
		ticket.ID = primitive.NewObjectID()
	}
	ticket.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, ticket)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return interfaces.ErrDuplicateCode
		}
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ticket)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return &ticket, nil
}

func (r *ticketRepository) MarkUsed(ctx context.Context, id primitive.ObjectID, usedAt time.Time) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_used": true, "used_at": usedAt}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ticket)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to mark ticket used: %w", err)
	}

	return &ticket, nil
}

func (r *ticketRepository) ListByUser(ctx context.Context, userID string) ([]*models.Ticket, error) {
	cursor, err := r.collection.Find(
		ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer cursor.Close(ctx)

	var tickets []*models.Ticket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, fmt.Errorf("failed to decode tickets: %w", err)
	}

	return tickets, nil
}

func (r *ticketRepository) ListActive(ctx context.Context, userID string, now time.Time) ([]*models.Ticket, error) {
	filter := bson.M{
		"user_id":     userID,
		"is_used":     false,
		"valid_until": bson.M{"$gte": now},
	}

	cursor, err := r.collection.Find(
		ctx,
		filter,
		options.Find().SetSort(bson.D{{Key: "valid_from", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list active tickets: %w", err)
	}
	defer cursor.Close(ctx)

	var tickets []*models.Ticket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, fmt.Errorf("failed to decode tickets: %w", err)
	}

	return tickets, nil
}
