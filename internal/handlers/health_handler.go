package handlers

import (
	"net/http"

	"citytransit/pkg/cache"
	"citytransit/pkg/database"
	"citytransit/pkg/queue"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	db        *database.MongoDB
	cache     *cache.RedisCache
	publisher *queue.Publisher
	version   string
}

func NewHealthHandler(db *database.MongoDB, c *cache.RedisCache, publisher *queue.Publisher, version string) *HealthHandler {
	return &HealthHandler{
		db:        db,
		cache:     c,
		publisher: publisher,
		version:   version,
	}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": h.version,
	})
}

func (h *HealthHandler) DatabaseHealth(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "service": "mongodb"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "mongodb"})
}

func (h *HealthHandler) CacheHealth(c *gin.Context) {
	if h.cache == nil {
		c.JSON(http.StatusOK, gin.H{"status": "disabled", "service": "redis"})
		return
	}
	if err := h.cache.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "service": "redis"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "redis"})
}

func (h *HealthHandler) QueueHealth(c *gin.Context) {
	if h.publisher == nil {
		c.JSON(http.StatusOK, gin.H{"status": "disabled", "service": "rabbitmq"})
		return
	}
	if err := h.publisher.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "service": "rabbitmq"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "rabbitmq"})
}
