package services

import (
	"testing"

	"citytransit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRoutes_CandidateSet(t *testing.T) {
	service := NewRouteService()

	candidates, err := service.GenerateRoutes("Home", "Airport", models.PreferenceFastest)
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	byID := make(map[string]*models.RouteCandidate, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}

	fastest := byID["route_1"]
	require.NotNil(t, fastest)
	assert.Equal(t, models.CategoryFastest, fastest.Category)
	assert.Equal(t, 29, fastest.Duration)
	assert.Equal(t, 45.0, fastest.Fare)
	assert.Equal(t, 1, fastest.Transfers)
	require.Len(t, fastest.Legs, 2)
	assert.Equal(t, "Home", fastest.Legs[0].From)
	assert.Equal(t, "Airport", fastest.Legs[1].To)

	cheapest := byID["route_2"]
	require.NotNil(t, cheapest)
	assert.Equal(t, models.CategoryCheapest, cheapest.Category)
	assert.Equal(t, 48, cheapest.Duration)
	assert.Equal(t, 25.0, cheapest.Fare)
	assert.Equal(t, 0, cheapest.Transfers)

	alternative := byID["route_3"]
	require.NotNil(t, alternative)
	assert.Equal(t, models.CategoryAlternative, alternative.Category)
	assert.Equal(t, 35, alternative.Duration)
	assert.Equal(t, 55.0, alternative.Fare)
	assert.Equal(t, 1, alternative.Transfers)
}

func TestGenerateRoutes_Ordering(t *testing.T) {
	service := NewRouteService()

	tests := []struct {
		name       string
		preference models.Preference
		wantOrder  []string
	}{
		{"fastest sorts by duration", models.PreferenceFastest, []string{"route_1", "route_3", "route_2"}},
		{"cheapest sorts by fare", models.PreferenceCheapest, []string{"route_2", "route_1", "route_3"}},
		{"safest keeps template order", models.PreferenceSafest, []string{"route_1", "route_2", "route_3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates, err := service.GenerateRoutes("A", "B", tt.preference)
			require.NoError(t, err)
			require.Len(t, candidates, 3)

			var order []string
			for _, c := range candidates {
				order = append(order, c.ID)
			}
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestGenerateRoutes_Recommendation(t *testing.T) {
	service := NewRouteService()

	tests := []struct {
		preference    models.Preference
		recommendedID string
	}{
		{models.PreferenceFastest, "route_1"},
		{models.PreferenceCheapest, "route_2"},
	}

	for _, tt := range tests {
		candidates, err := service.GenerateRoutes("A", "B", tt.preference)
		require.NoError(t, err)

		var recommended []string
		for _, c := range candidates {
			if c.IsRecommended {
				recommended = append(recommended, c.ID)
			}
		}
		assert.Equal(t, []string{tt.recommendedID}, recommended, "preference %s", tt.preference)
	}
}

func TestGenerateRoutes_SafestRecommendsNothing(t *testing.T) {
	service := NewRouteService()

	candidates, err := service.GenerateRoutes("A", "B", models.PreferenceSafest)
	require.NoError(t, err)

	for _, c := range candidates {
		assert.False(t, c.IsRecommended, "candidate %s should not be recommended", c.ID)
	}
}

func TestGenerateRoutes_DefaultsToFastest(t *testing.T) {
	service := NewRouteService()

	candidates, err := service.GenerateRoutes("A", "B", "")
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, "route_1", candidates[0].ID)
	assert.True(t, candidates[0].IsRecommended)
}

func TestGenerateRoutes_InvalidPreference(t *testing.T) {
	service := NewRouteService()

	candidates, err := service.GenerateRoutes("A", "B", "scenic")
	assert.Nil(t, candidates)
	assert.ErrorIs(t, err, ErrInvalidPreference)
}
