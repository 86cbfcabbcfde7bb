package interfaces

import (
	"context"

	"citytransit/internal/models"
)

type JourneyRepository interface {
	Create(ctx context.Context, journey *models.Journey) error

	// ListByUser returns the user's journeys, newest first.
	ListByUser(ctx context.Context, userID string) ([]*models.Journey, error)
}
