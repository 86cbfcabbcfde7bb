package interfaces

import (
	"context"

	"citytransit/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ChatRepository interface {
	CreateMessage(ctx context.Context, message *models.ChatMessage) error

	// AttachReply sets the reply and intent tag on a message exactly once
	// and returns the updated record. Returns ErrNotFound if absent.
	AttachReply(ctx context.Context, id primitive.ObjectID, reply string, intent models.IntentTag) (*models.ChatMessage, error)

	// ListByUser returns the user's most recent messages in creation order,
	// capped at limit.
	ListByUser(ctx context.Context, userID string, limit int) ([]*models.ChatMessage, error)
}
