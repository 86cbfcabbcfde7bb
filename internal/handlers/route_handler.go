package handlers

import (
	"errors"

	"citytransit/internal/models"
	"citytransit/internal/services"
	"citytransit/internal/utils"
	"citytransit/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	routeService services.RouteService
}

func NewRouteHandler(routeService services.RouteService) *RouteHandler {
	return &RouteHandler{
		routeService: routeService,
	}
}

// SearchRoutes generates route candidates between two locations.
func (h *RouteHandler) SearchRoutes(c *gin.Context) {
	var req models.RouteSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	preference := req.Preference
	if preference == "" {
		preference = models.PreferenceFastest
	}

	routes, err := h.routeService.GenerateRoutes(req.From, req.To, preference)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPreference) {
			utils.ValidationErrorResponse(c, map[string]string{
				"preference": "preference must be one of: fastest, cheapest, safest",
			})
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	metrics.RouteSearches.WithLabelValues(string(preference)).Inc()

	utils.SuccessResponse(c, "Routes generated successfully", gin.H{"routes": routes})
}
