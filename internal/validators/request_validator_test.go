package validators

import (
	"testing"

	"citytransit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_PurchaseTicketRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       models.PurchaseTicketRequest
		wantField string
	}{
		{
			name: "valid single ride",
			req:  models.PurchaseTicketRequest{Type: models.ClassSingle, TransportType: models.ModeBus, Fare: 25},
		},
		{
			name: "valid day pass on metro",
			req:  models.PurchaseTicketRequest{Type: models.ClassDayPass, TransportType: models.ModeMetro, Fare: 100},
		},
		{
			name: "zero fare is allowed",
			req:  models.PurchaseTicketRequest{Type: models.ClassSingle, TransportType: models.ModeBus, Fare: 0},
		},
		{
			name:      "unknown ticket class",
			req:       models.PurchaseTicketRequest{Type: "weekly", TransportType: models.ModeBus, Fare: 25},
			wantField: "Type",
		},
		{
			name:      "taxi has no tickets",
			req:       models.PurchaseTicketRequest{Type: models.ClassSingle, TransportType: models.ModeTaxi, Fare: 25},
			wantField: "TransportType",
		},
		{
			name:      "negative fare",
			req:       models.PurchaseTicketRequest{Type: models.ClassSingle, TransportType: models.ModeBus, Fare: -5},
			wantField: "Fare",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(&tt.req)
			if tt.wantField == "" {
				assert.Empty(t, errs)
				return
			}

			require.NotEmpty(t, errs)
			assert.Equal(t, tt.wantField, errs[0].Field)
			assert.Contains(t, errs.Details(), tt.wantField)
		})
	}
}

func TestValidateStruct_RouteSearchRequest(t *testing.T) {
	valid := models.RouteSearchRequest{From: "Home", To: "Airport", Preference: models.PreferenceCheapest}
	assert.Empty(t, ValidateStruct(&valid))

	// An omitted preference is fine; the planner applies its default.
	noPreference := models.RouteSearchRequest{From: "Home", To: "Airport"}
	assert.Empty(t, ValidateStruct(&noPreference))

	badPreference := models.RouteSearchRequest{From: "Home", To: "Airport", Preference: "scenic"}
	errs := ValidateStruct(&badPreference)
	require.NotEmpty(t, errs)
	assert.Equal(t, "preference must be one of: fastest, cheapest, safest", errs[0].Message)

	missing := models.RouteSearchRequest{}
	errs = ValidateStruct(&missing)
	assert.Len(t, errs, 2)
}
