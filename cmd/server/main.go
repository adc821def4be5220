package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jstamb/california-breaking-news/internal/config"
	"github.com/jstamb/california-breaking-news/internal/email"
	"github.com/jstamb/california-breaking-news/internal/handler"
	"github.com/jstamb/california-breaking-news/internal/infrastructure/database"
	"github.com/jstamb/california-breaking-news/internal/logger"
	"github.com/jstamb/california-breaking-news/internal/metrics"
	"github.com/jstamb/california-breaking-news/internal/middleware"
	"github.com/jstamb/california-breaking-news/internal/repository"
	"github.com/jstamb/california-breaking-news/internal/service"
	"github.com/jstamb/california-breaking-news/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	dbConfig := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}

	// Apply schema migrations
	if err := database.Migrate(dbConfig, "migrations"); err != nil {
		logger.Fatal("Failed to apply migrations",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), dbConfig)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	postRepo := repository.NewPostgresPostRepository(pool)
	subscriberRepo := repository.NewPostgresSubscriberRepository(pool)
	emailLogRepo := repository.NewPostgresEmailLogRepository(pool)
	apiKeyRepo := repository.NewPostgresAPIKeyRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize email sender
	sender := email.NewResendClient(cfg.ResendAPIKey, cfg.FromEmail, emailLogRepo)

	// Initialize services
	postService := service.NewPostService(postRepo, v)
	newsletterService := service.NewNewsletterService(
		subscriberRepo,
		postRepo,
		emailLogRepo,
		sender,
		cfg.SiteURL,
		cfg.DigestBatchSize,
		cfg.DigestBatchDelay,
	)
	contactService := service.NewContactService(sender, cfg.ContactEmail)

	// Initialize handlers
	postHandler := handler.NewPostHandler(postService)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService, v, cfg.SiteURL, cfg.DigestPostLimit)
	contactHandler := handler.NewContactHandler(contactService, v)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{cfg.SiteURL},
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:  []string{"Content-Type", "X-API-Key"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiKeyAuth := middleware.APIKeyAuth(apiKeyRepo)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Post routes
		posts := v1.Group("/posts")
		{
			posts.GET("", postHandler.ListPosts)
			posts.GET("/:slug", postHandler.GetPost)
			posts.POST("", apiKeyAuth, postHandler.CreatePost)
			posts.POST("/check", apiKeyAuth, postHandler.CheckDuplicate)
			posts.PATCH("/:slug", apiKeyAuth, postHandler.UpdatePost)
			posts.DELETE("/:slug", apiKeyAuth, postHandler.DeletePost)
		}

		// Newsletter routes
		newsletter := v1.Group("/newsletter")
		{
			newsletter.POST("/subscribe", newsletterHandler.Subscribe)
			newsletter.GET("/verify/:token", newsletterHandler.Verify)
			newsletter.GET("/unsubscribe/:token", newsletterHandler.Unsubscribe)
			newsletter.POST("/send-digest", apiKeyAuth, newsletterHandler.SendDigest)
			newsletter.GET("/stats", apiKeyAuth, newsletterHandler.Stats)
		}

		// Contact route
		v1.POST("/contact", contactHandler.Submit)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
