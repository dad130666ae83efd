package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"material-advisor/internal/app"
	"material-advisor/internal/config"
	"material-advisor/internal/logger"
	"material-advisor/internal/telemetry"
	"material-advisor/middleware"
	"material-advisor/routes"

	"github.com/gin-gonic/gin"
)

const serviceName = "material-advisor"

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.InitLogger(cfg)

	if cfg.OTelEnabled {
		shutdown, err := telemetry.InitTracer(serviceName, cfg.OTelEndpoint)
		if err != nil {
			logger.Warn("Tracing disabled", "error", err)
		} else {
			defer shutdown()
		}
	}

	metrics, err := telemetry.InitMetrics()
	if err != nil {
		logger.Warn("Metrics disabled", "error", err)
	}

	ctx := context.Background()
	a, err := app.New(ctx, cfg, metrics)
	if err != nil {
		logger.Error("Failed to start", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	// Build the first index off the request path; queries arriving earlier
	// join the same build.
	go func() {
		if err := a.Engine.Refresh(ctx); err != nil {
			logger.Warn("Initial index build failed, retrying on first query", "error", err)
		}
	}()

	// Initialize Gin router
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddlewareWithOrigins(cfg.CORSOrigins))
	if cfg.OTelEnabled {
		router.Use(middleware.TracingMiddleware(serviceName))
		router.Use(middleware.EnrichTrace())
	}
	router.Use(middleware.MetricsMiddleware(metrics))
	router.Use(middleware.RequestSizeLimit(cfg.MaxRequestBytes))
	if a.Redis != nil {
		router.Use(middleware.RateLimitMiddleware(a.Redis, cfg))
	}
	if cfg.Debug() {
		router.Use(gin.Logger())
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		status := a.Engine.Status()
		c.JSON(http.StatusOK, gin.H{
			"status":            "healthy",
			"timestamp":         time.Now(),
			"index_initialized": status.Initialized,
			"embedding_breaker": a.EmbedderState(),
		})
	})

	// Setup routes
	routes.SetupKnowledgeRoutes(router, a.Engine)
	var gen routes.Generator
	if a.Generator != nil {
		gen = a.Generator
	}
	routes.SetupChatRoutes(router, a.Engine, gen, cfg.Retrieval.QueryTimeout+30*time.Second)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}
