package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"citytransit/internal/config"
	"citytransit/internal/handlers"
	"citytransit/internal/middleware"
	"citytransit/internal/repositories/mongodb"
	"citytransit/internal/services"
	"citytransit/pkg/cache"
	"citytransit/pkg/database"
	"citytransit/pkg/logger"
	"citytransit/pkg/metrics"
	"citytransit/pkg/queue"
	"citytransit/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:  cfg.App.LogLevel,
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log.WithFields(map[string]interface{}{
		"port":        cfg.App.Port,
		"environment": cfg.App.Environment,
	}).Info("Starting citytransit")

	db, err := database.NewMongoDB(&database.Config{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Error("Failed to disconnect from MongoDB")
		}
	}()

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	if err := mongodb.EnsureTicketIndexes(indexCtx, db.Database); err != nil {
		cancelIndex()
		log.WithError(err).Fatal("Failed to create ticket indexes")
	}
	cancelIndex()

	// Cache and queue are useful but not load-bearing; the service runs
	// without them.
	redisCache, err := cache.NewRedisCache(&cache.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, continuing without cache")
		redisCache = nil
	} else {
		defer redisCache.Close()
	}

	var publisher *queue.Publisher
	if cfg.Queue.Enabled {
		publisher, err = queue.NewPublisher(cfg.Queue, log)
		if err != nil {
			log.WithError(err).Warn("RabbitMQ unavailable, continuing without events")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Repositories
	ticketRepo := mongodb.NewTicketRepository(db.Database)
	chatRepo := mongodb.NewChatRepository(db.Database)
	stopRepo := mongodb.NewStopRepository(db.Database, redisCache, cfg.Redis.StopListTTL)
	journeyRepo := mongodb.NewJourneyRepository(db.Database)
	userRepo := mongodb.NewUserRepository(db.Database)

	// Services
	routeService := services.NewRouteService()
	ticketService := services.NewTicketService(ticketRepo, publisher, log)
	chatService := services.NewChatService(chatRepo)
	stopService := services.NewStopService(stopRepo)
	journeyService := services.NewJourneyService(journeyRepo)
	userService := services.NewUserService(userRepo)

	// Handlers
	routeHandler := handlers.NewRouteHandler(routeService)
	ticketHandler := handlers.NewTicketHandler(ticketService)
	chatHandler := handlers.NewChatHandler(chatService)
	stopHandler := handlers.NewStopHandler(stopService)
	journeyHandler := handlers.NewJourneyHandler(journeyService)
	userHandler := handlers.NewUserHandler(userService)
	healthHandler := handlers.NewHealthHandler(db, redisCache, publisher, cfg.App.Version)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.RequestLogger(log))
	router.Use(metrics.Middleware())

	router.GET("/health", healthHandler.Health)
	router.GET("/health/db", healthHandler.DatabaseHealth)
	router.GET("/health/cache", healthHandler.CacheHealth)
	router.GET("/health/queue", healthHandler.QueueHealth)
	router.GET("/metrics", metrics.Handler())

	auth := middleware.AuthRequired(cfg.Security.JWTSecret)

	v1 := router.Group("/api/v1")
	{
		routes.SetupTransitRoutes(v1, routeHandler, stopHandler, journeyHandler, auth)
		routes.SetupTicketRoutes(v1, ticketHandler, auth)
		routes.SetupChatRoutes(v1, chatHandler, auth)
		routes.SetupUserRoutes(v1, userHandler, auth)
	}

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.App.Port),
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.WithField("port", cfg.App.Port).Info("Server is running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("Server forced to shutdown")
	}

	log.Info("Server exited")
}
