package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eventlodge/room-assignment-backend/internal/config"
	"github.com/eventlodge/room-assignment-backend/internal/database"
	"github.com/eventlodge/room-assignment-backend/internal/handlers"
	"github.com/eventlodge/room-assignment-backend/internal/middleware"
	"github.com/eventlodge/room-assignment-backend/internal/services"
	"github.com/eventlodge/room-assignment-backend/pkg/jwt"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting EventLodge Room Assignment Backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database connection
	logger.Info("Connecting to database...")
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize repositories
	eventRepo := database.NewEventRepository(db)
	clientRepo := database.NewClientRepository(db)
	hotelRepo := database.NewHotelRepository(db)
	eventHotelRepo := database.NewEventHotelAssignmentRepository(db)
	roomRepo := database.NewLogicalRoomRepository(db)

	// Initialize services
	logger.Info("Initializing services...")
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.TokenExpiry)
	locks := services.NewLockRegistry()
	auditService := services.NewAuditService(db)

	eventService := services.NewEventService(eventRepo, auditService, logger)
	clientService := services.NewClientService(clientRepo, hotelRepo, eventRepo, locks, auditService, logger)
	inventoryService := services.NewInventoryService(hotelRepo, eventRepo, eventHotelRepo, roomRepo, locks, auditService, logger)
	assignmentService := services.NewAssignmentService(clientRepo, hotelRepo, eventRepo, locks, auditService, logger)
	statsService := services.NewStatsService(clientRepo, hotelRepo, eventRepo, logger)

	// Keep the event participant counter current after roster mutations
	refreshParticipants := func(eventID string) {
		if err := eventRepo.RefreshParticipantCount(eventID); err != nil {
			logger.WithError(err).WithField("event_id", eventID).Warn("Failed to refresh participant count")
		}
	}
	assignmentService.RegisterHook(refreshParticipants)
	clientService.RegisterHook(refreshParticipants)

	logger.Info("Services initialized")

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(eventService, logger)
	clientHandler := handlers.NewClientHandler(clientService, logger)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, logger)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService, logger)
	statsHandler := handlers.NewStatsHandler(statsService, logger)

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", healthCheckHandler(db))

	// API v1 routes (all protected)
	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(jwtService, cfg.Auth.APIKeyHash, logger))
	{
		v1.POST("/events", eventHandler.Create)
		v1.GET("/events/:eventId", eventHandler.Get)

		// Clients
		v1.POST("/events/:eventId/clients", clientHandler.Create)
		v1.GET("/events/:eventId/clients", clientHandler.ListByEvent)
		v1.GET("/events/:eventId/clients/unassigned", clientHandler.ListUnassigned)
		v1.GET("/clients/:clientId", clientHandler.Get)
		v1.PATCH("/clients/:clientId/status", clientHandler.UpdateStatus)
		v1.DELETE("/clients/:clientId", clientHandler.Delete)

		// Hotels and room supply
		v1.POST("/events/:eventId/hotels", inventoryHandler.CreateHotel)
		v1.GET("/events/:eventId/hotels", inventoryHandler.ListHotels)
		v1.GET("/hotels/:hotelId", inventoryHandler.GetHotel)
		v1.GET("/hotels/:hotelId/roster", inventoryHandler.GetRoster)
		v1.POST("/events/:eventId/room-supply", inventoryHandler.DeclareRoomSupply)
		v1.GET("/events/:eventId/room-supply", inventoryHandler.ListRoomSupply)
		v1.POST("/room-supply/:assignmentId/reserve", inventoryHandler.ReserveRooms)
		v1.POST("/room-supply/:assignmentId/suspend", inventoryHandler.SuspendSupply)
		v1.POST("/events/:eventId/logical-rooms", inventoryHandler.CreateLogicalRoom)
		v1.GET("/hotels/:hotelId/logical-rooms", inventoryHandler.ListLogicalRooms)
		v1.PATCH("/logical-rooms/:roomId/real-room", inventoryHandler.BindRealRoomNumber)

		// Assignment engine
		v1.POST("/events/:eventId/assignments/manual", assignmentHandler.ManualAssign)
		v1.POST("/events/:eventId/assignments/bulk", assignmentHandler.BulkAssign)
		v1.POST("/events/:eventId/assignments/auto", assignmentHandler.AutoAssign)
		v1.POST("/events/:eventId/assignments/move", assignmentHandler.Move)
		v1.POST("/events/:eventId/assignments/swap", assignmentHandler.Swap)
		v1.DELETE("/events/:eventId/assignments/clients/:clientId", assignmentHandler.Unassign)
		v1.DELETE("/events/:eventId/assignments", assignmentHandler.ClearAll)
		v1.GET("/events/:eventId/assignments/validate", assignmentHandler.Validate)

		// Read-side stats
		v1.GET("/events/:eventId/stats", statsHandler.EventStats)
		v1.GET("/events/:eventId/groups", statsHandler.GroupReports)
		v1.GET("/events/:eventId/groups/:groupName", statsHandler.GroupDetail)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// requestLogger middleware for logging HTTP requests
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		fields := logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
			"user_agent": c.Request.UserAgent(),
		}

		entry := logger.WithFields(fields)

		if len(c.Errors) > 0 {
			for i, err := range c.Errors {
				entry = entry.WithField(fmt.Sprintf("error_%d", i), err.Error())
			}
			entry.Error("Request failed with errors")
		} else {
			status := c.Writer.Status()
			if status >= 500 {
				entry.Error("Request completed with server error")
			} else if status >= 400 {
				entry.Warn("Request completed with client error")
			} else {
				entry.Info("Request completed successfully")
			}
		}
	}
}

// healthCheckHandler returns a health check endpoint
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unhealthy",
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "healthy",
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
