package interfaces

import (
	"context"
	"time"

	"citytransit/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TicketRepository interface {
	// Create inserts a fully-formed ticket. Returns ErrDuplicateCode if the
	// redemption code collides with one already issued.
	Create(ctx context.Context, ticket *models.Ticket) error

	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error)

	// MarkUsed sets is_used and used_at on the ticket and returns the
	// updated record. Returns ErrNotFound if the id does not exist. It does
	// not check prior use or expiry; redeeming twice overwrites used_at.
	MarkUsed(ctx context.Context, id primitive.ObjectID, usedAt time.Time) (*models.Ticket, error)

	// ListByUser returns all of a user's tickets, newest first.
	ListByUser(ctx context.Context, userID string) ([]*models.Ticket, error)

	// ListActive returns the user's tickets with is_used=false and
	// valid_until >= now. The view is computed per call, never stored.
	ListActive(ctx context.Context, userID string, now time.Time) ([]*models.Ticket, error)
}
