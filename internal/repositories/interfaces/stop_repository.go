package interfaces

import (
	"context"

	"citytransit/internal/models"
)

type StopRepository interface {
	Create(ctx context.Context, stop *models.Stop) error

	// ListActive returns active stops ordered by name, optionally filtered
	// by transport mode. No geospatial filtering is applied.
	ListActive(ctx context.Context, mode *models.TransportMode) ([]*models.Stop, error)
}
