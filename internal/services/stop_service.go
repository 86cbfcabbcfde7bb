package services

import (
	"context"

	"citytransit/internal/models"
	"citytransit/internal/repositories/interfaces"
)

type StopService interface {
	// Nearby lists active stops for the caller's position. Coordinates are
	// part of the contract but no distance filtering is performed; the
	// listing is a deliberate pass-through.
	Nearby(ctx context.Context, lat, lng float64, mode *models.TransportMode) ([]*models.Stop, error)
}

type stopService struct {
	stopRepo interfaces.StopRepository
}

func NewStopService(stopRepo interfaces.StopRepository) StopService {
	return &stopService{
		stopRepo: stopRepo,
	}
}

func (s *stopService) Nearby(ctx context.Context, lat, lng float64, mode *models.TransportMode) ([]*models.Stop, error) {
	_ = lat
	_ = lng
	return s.stopRepo.ListActive(ctx, mode)
}
