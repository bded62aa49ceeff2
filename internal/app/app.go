package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	hireflowHTTP "hireflow/internal/controller/http"
	"hireflow/internal/model"
	"hireflow/internal/realtime"
	"hireflow/internal/repo/persistent"
	"hireflow/internal/usecase"
	"hireflow/pkg/cache"
	"hireflow/pkg/config"
	"hireflow/pkg/database"
	"hireflow/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "hireflow/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	registry    *realtime.Registry
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.DepartmentModel{},
		&model.HiringRequestModel{},
		&model.NotificationModel{},
	); err != nil {
		log.Error("Failed to migrate database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		// Redis only backs the unread-count cache; the service works without it
		redisClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		registry:    realtime.NewRegistry(log),
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	userRepo := persistent.NewUserRepository(a.db)
	requestRepo := persistent.NewHiringRequestRepository(a.db)
	notificationRepo := persistent.NewNotificationRepository(a.db)

	// Initialize use cases
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, a.registry, a.redisClient, a.log)
	resolver := usecase.NewApproverResolver(userRepo)
	workflowUseCase := usecase.NewWorkflowUseCase(requestRepo, userRepo, resolver, notificationUseCase, a.log)

	// Initialize HTTP handlers
	hiringRequestHandler := hireflowHTTP.NewHiringRequestHandler(workflowUseCase, a.log)
	notificationHandler := hireflowHTTP.NewNotificationHandler(notificationUseCase, a.log)
	wsHandler := hireflowHTTP.NewWebSocketHandler(a.registry, a.log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Paths are consumed verbatim by the front end; no version prefix.
	r.POST("/hiring-requests", hiringRequestHandler.CreateHiringRequest)
	r.GET("/hiring-requests", hiringRequestHandler.ListHiringRequests)
	r.GET("/hiring-requests/:id", hiringRequestHandler.GetHiringRequest)
	r.PUT("/hiring-requests/:id", hiringRequestHandler.UpdateHiringRequest)

	r.GET("/notifications/:receiverId", notificationHandler.GetNotifications)
	r.GET("/notifications/:receiverId/unread-count", notificationHandler.GetUnreadCount)
	r.PUT("/notifications/:id/read", notificationHandler.MarkRead)
	r.PUT("/notifications/:id/read-all", notificationHandler.MarkAllRead)
	r.DELETE("/notifications/:id", notificationHandler.DeleteNotification)

	// WebSocket endpoint - clients identify themselves after connecting
	r.GET("/ws", wsHandler.HandleWebSocket)

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("HireFlow service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down HireFlow service...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("HireFlow service exited")
	return nil
}
