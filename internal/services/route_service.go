package services

import (
	"errors"
	"sort"

	"citytransit/internal/models"
)

// ErrInvalidPreference is returned when a search asks for a ranking the
// planner does not know.
var ErrInvalidPreference = errors.New("invalid route preference")

// Interchange labels used for the interior boundaries of multi-leg routes.
const (
	interchangeCentral = "Central Station"
	interchangeMetro   = "Metro Station"
)

type RouteService interface {
	// GenerateRoutes produces the candidate set for a trip between two
	// opaque location labels. The preference changes ordering and the
	// recommendation flag, never the candidates themselves.
	GenerateRoutes(origin, destination string, preference models.Preference) ([]*models.RouteCandidate, error)
}

type routeService struct{}

func NewRouteService() RouteService {
	return &routeService{}
}

func (s *routeService) GenerateRoutes(origin, destination string, preference models.Preference) ([]*models.RouteCandidate, error) {
	if preference == "" {
		preference = models.PreferenceFastest
	}
	if !preference.Valid() {
		return nil, ErrInvalidPreference
	}

	candidates := []*models.RouteCandidate{
		newCandidate("route_1", models.CategoryFastest, []models.Leg{
			{Mode: models.ModeMetro, Line: "Metro Line 1", From: origin, To: interchangeCentral, Duration: 18, Fare: 25, DisplayColor: "#3B82F6"},
			{Mode: models.ModeBus, Line: "Bus 42A", From: interchangeCentral, To: destination, Duration: 11, Fare: 20, DisplayColor: "#EF4444"},
		}),
		newCandidate("route_2", models.CategoryCheapest, []models.Leg{
			{Mode: models.ModeBus, Line: "Bus 15", From: origin, To: destination, Duration: 48, Fare: 25, DisplayColor: "#EF4444"},
		}),
		newCandidate("route_3", models.CategoryAlternative, []models.Leg{
			{Mode: models.ModeAuto, Line: "Auto Rickshaw", From: origin, To: interchangeMetro, Duration: 8, Fare: 35, DisplayColor: "#F59E0B"},
			{Mode: models.ModeMetro, Line: "Metro Line 2", From: interchangeMetro, To: destination, Duration: 27, Fare: 20, DisplayColor: "#3B82F6"},
		}),
	}

	// The recommendation follows the category that matches the stated
	// preference. "safest" matches no category, so nothing is flagged.
	for _, candidate := range candidates {
		candidate.IsRecommended = string(candidate.Category) == string(preference)
	}

	switch preference {
	case models.PreferenceFastest:
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Duration < candidates[j].Duration
		})
	case models.PreferenceCheapest:
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Fare < candidates[j].Fare
		})
	case models.PreferenceSafest:
		// No safety signal exists in the data; template order is the
		// intended result, not an omission.
	}

	return candidates, nil
}

func newCandidate(id string, category models.RouteCategory, legs []models.Leg) *models.RouteCandidate {
	candidate := &models.RouteCandidate{
		ID:        id,
		Category:  category,
		Legs:      legs,
		Transfers: len(legs) - 1,
	}

	for _, leg := range legs {
		candidate.Duration += leg.Duration
		candidate.Fare += leg.Fare
	}

	return candidate
}
