package routes

import (
	"citytransit/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupTransitRoutes wires route search, nearby stops and journey history.
func SetupTransitRoutes(r *gin.RouterGroup, routeHandler *handlers.RouteHandler, stopHandler *handlers.StopHandler, journeyHandler *handlers.JourneyHandler, auth gin.HandlerFunc) {
	search := r.Group("/routes")
	search.Use(auth)
	{
		search.POST("/search", routeHandler.SearchRoutes)
	}

	stops := r.Group("/stops")
	stops.Use(auth)
	{
		stops.GET("/nearby", stopHandler.NearbyStops)
	}

	journeys := r.Group("/journeys")
	journeys.Use(auth)
	{
		journeys.POST("", journeyHandler.SaveJourney)
		journeys.GET("", journeyHandler.ListJourneys)
	}
}
