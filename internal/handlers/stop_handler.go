package handlers

import (
	"strconv"

	"citytransit/internal/models"
	"citytransit/internal/services"
	"citytransit/internal/utils"

	"github.com/gin-gonic/gin"
)

type StopHandler struct {
	stopService services.StopService
}

func NewStopHandler(stopService services.StopService) *StopHandler {
	return &StopHandler{
		stopService: stopService,
	}
}

// NearbyStops lists active stops around the caller's position.
func (h *StopHandler) NearbyStops(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		utils.ValidationErrorResponse(c, map[string]string{"lat": "lat must be a number"})
		return
	}

	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		utils.ValidationErrorResponse(c, map[string]string{"lng": "lng must be a number"})
		return
	}

	var mode *models.TransportMode
	if raw := c.Query("type"); raw != "" {
		m := models.TransportMode(raw)
		if !m.Valid() {
			utils.ValidationErrorResponse(c, map[string]string{
				"type": "type must be one of: bus, metro, auto, taxi",
			})
			return
		}
		mode = &m
	}

	stops, err := h.stopService.Nearby(c.Request.Context(), lat, lng, mode)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Stops retrieved successfully", gin.H{"stops": stops})
}
