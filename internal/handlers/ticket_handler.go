package handlers

import (
	"errors"

	"citytransit/internal/middleware"
	"citytransit/internal/models"
	"citytransit/internal/repositories/interfaces"
	"citytransit/internal/services"
	"citytransit/internal/utils"
	"citytransit/internal/validators"
	"citytransit/pkg/metrics"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TicketHandler struct {
	ticketService services.TicketService
}

func NewTicketHandler(ticketService services.TicketService) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
	}
}

// PurchaseTicket issues a new digital ticket for the caller.
func (h *TicketHandler) PurchaseTicket(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req models.PurchaseTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	ticket, err := h.ticketService.Purchase(c.Request.Context(), userID, &req)
	if err != nil {
		var verrs validators.ValidationErrors
		if errors.As(err, &verrs) {
			metrics.TicketOperations.WithLabelValues("purchase", "rejected").Inc()
			utils.ValidationErrorResponse(c, verrs.Details())
			return
		}
		metrics.TicketOperations.WithLabelValues("purchase", "error").Inc()
		utils.InternalServerErrorResponse(c)
		return
	}

	metrics.TicketOperations.WithLabelValues("purchase", "success").Inc()

	utils.CreatedResponse(c, "Ticket purchased successfully", ticket)
}

// RedeemTicket marks a ticket as used.
func (h *TicketHandler) RedeemTicket(c *gin.Context) {
	if _, ok := middleware.UserID(c); !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	// A malformed id addresses no ticket, so it gets the same answer as a
	// missing one.
	ticketID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Ticket")
		return
	}

	ticket, err := h.ticketService.Redeem(c.Request.Context(), ticketID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			metrics.TicketOperations.WithLabelValues("redeem", "not_found").Inc()
			utils.NotFoundResponse(c, "Ticket")
			return
		}
		metrics.TicketOperations.WithLabelValues("redeem", "error").Inc()
		utils.InternalServerErrorResponse(c)
		return
	}

	metrics.TicketOperations.WithLabelValues("redeem", "success").Inc()

	utils.SuccessResponse(c, "Ticket redeemed successfully", ticket)
}

// ActiveTickets lists the caller's unused, unexpired tickets.
func (h *TicketHandler) ActiveTickets(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	tickets, err := h.ticketService.Active(c.Request.Context(), userID)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Active tickets retrieved successfully", gin.H{"tickets": tickets})
}

// TicketHistory lists all of the caller's tickets, newest first.
func (h *TicketHandler) TicketHistory(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	tickets, err := h.ticketService.History(c.Request.Context(), userID)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Tickets retrieved successfully", gin.H{"tickets": tickets})
}
