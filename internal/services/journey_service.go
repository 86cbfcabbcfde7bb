package services

import (
	"context"

	"citytransit/internal/models"
	"citytransit/internal/repositories/interfaces"
)

type JourneyService interface {
	Save(ctx context.Context, userID string, req *models.SaveJourneyRequest) (*models.Journey, error)
	List(ctx context.Context, userID string) ([]*models.Journey, error)
}

type journeyService struct {
	journeyRepo interfaces.JourneyRepository
}

func NewJourneyService(journeyRepo interfaces.JourneyRepository) JourneyService {
	return &journeyService{
		journeyRepo: journeyRepo,
	}
}

func (s *journeyService) Save(ctx context.Context, userID string, req *models.SaveJourneyRequest) (*models.Journey, error) {
	journey := &models.Journey{
		UserID:       userID,
		FromLocation: req.From,
		ToLocation:   req.To,
		Route:        req.Route,
		Status:       models.JourneyStatusPlanned,
	}

	if req.Route != nil {
		journey.TotalFare = req.Route.Fare
		journey.TotalTime = req.Route.Duration
	}

	if err := s.journeyRepo.Create(ctx, journey); err != nil {
		return nil, err
	}

	return journey, nil
}

func (s *journeyService) List(ctx context.Context, userID string) ([]*models.Journey, error) {
	return s.journeyRepo.ListByUser(ctx, userID)
}
