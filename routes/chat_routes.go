package routes

import (
	"citytransit/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupChatRoutes wires the assistant endpoints.
func SetupChatRoutes(r *gin.RouterGroup, chatHandler *handlers.ChatHandler, auth gin.HandlerFunc) {
	chat := r.Group("/chat")
	chat.Use(auth)
	{
		chat.POST("", chatHandler.SendMessage)
		chat.GET("/history", chatHandler.ChatHistory)
	}
}
