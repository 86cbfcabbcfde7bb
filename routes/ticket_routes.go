package routes

import (
	"citytransit/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupTicketRoutes wires the ticket lifecycle endpoints.
func SetupTicketRoutes(r *gin.RouterGroup, ticketHandler *handlers.TicketHandler, auth gin.HandlerFunc) {
	tickets := r.Group("/tickets")
	tickets.Use(auth)
	{
		tickets.POST("", ticketHandler.PurchaseTicket)
		tickets.GET("", ticketHandler.TicketHistory)
		tickets.GET("/active", ticketHandler.ActiveTickets)
		tickets.POST("/:id/use", ticketHandler.RedeemTicket)
	}
}
