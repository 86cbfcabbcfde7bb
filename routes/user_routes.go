package routes

import (
	"citytransit/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupUserRoutes wires the profile endpoints.
func SetupUserRoutes(r *gin.RouterGroup, userHandler *handlers.UserHandler, auth gin.HandlerFunc) {
	users := r.Group("/users")
	users.Use(auth)
	{
		users.GET("/me", userHandler.Me)
	}
}
