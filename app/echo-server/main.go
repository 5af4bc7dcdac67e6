package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"predictBot/app/echo-server/metrics"
	"predictBot/app/echo-server/router"
	"predictBot/internal/bootstrap"
	"predictBot/internal/middleware"
	"predictBot/internal/rest"
	"predictBot/pkg/config"
	"predictBot/pkg/logger"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting prediction bot", "version", cfg.App.Version, "state_backend", cfg.State.Backend)

	// Init service
	predictionService, closeDeps, err := bootstrap.NewPredictionService(cfg)
	if err != nil {
		logger.Fatal("Failed to init prediction service", "error", err)
	}
	defer closeDeps()

	// Init handler
	predictionHandler := rest.NewPredictionHandler(predictionService, cfg.Signal.Timeout*time.Duration(cfg.Signal.MaxRetries+2))

	metrics.Init()

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(metrics.Middleware())

	// Setup routes
	router.SetMetricsRoute(e)
	api := e.Group("/api/v1")
	router.SetPredictionRoutes(api, predictionHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
