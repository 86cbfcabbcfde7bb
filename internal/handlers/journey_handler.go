package handlers

import (
	"citytransit/internal/middleware"
	"citytransit/internal/models"
	"citytransit/internal/services"
	"citytransit/internal/utils"

	"github.com/gin-gonic/gin"
)

type JourneyHandler struct {
	journeyService services.JourneyService
}

func NewJourneyHandler(journeyService services.JourneyService) *JourneyHandler {
	return &JourneyHandler{
		journeyService: journeyService,
	}
}

// SaveJourney records a planned journey for the caller.
func (h *JourneyHandler) SaveJourney(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req models.SaveJourneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	journey, err := h.journeyService.Save(c.Request.Context(), userID, &req)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.CreatedResponse(c, "Journey saved successfully", gin.H{"journey": journey})
}

// ListJourneys returns the caller's journey history.
func (h *JourneyHandler) ListJourneys(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	journeys, err := h.journeyService.List(c.Request.Context(), userID)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Journeys retrieved successfully", gin.H{"journeys": journeys})
}
