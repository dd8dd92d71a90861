package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"nola-analytics/internal/explorer/adapters/api"
	explorerHttp "nola-analytics/internal/explorer/adapters/http/fiber"
	explorerUsecase "nola-analytics/internal/explorer/core/usecase"
	"nola-analytics/internal/platform/config"
	"nola-analytics/internal/platform/logging"
)

func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogFormat)

	// One HTTP client shared by every session; it serves all three fetcher
	// ports of the controller.
	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)

	sessions := explorerHttp.NewSessionRegistry(func() *explorerUsecase.Controller {
		return explorerUsecase.NewController(client, client, client, explorerUsecase.Options{
			FallbackRiskCount: cfg.RiskFallbackCount,
			Logger:            logger,
		})
	})

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	explorerHandler := explorerHttp.NewExplorerHandler(sessions)
	app.Post("/api/v1/explorer/sessions", explorerHandler.CreateSession)
	app.Get("/api/v1/explorer/sessions/:id/view", explorerHandler.View)
	app.Put("/api/v1/explorer/sessions/:id/selection", explorerHandler.UpdateSelection)
	app.Post("/api/v1/explorer/sessions/:id/analyze", explorerHandler.Analyze)
	app.Delete("/api/v1/explorer/sessions/:id", explorerHandler.CloseSession)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.DashboardAddr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	logger.Info("dashboard started", "addr", cfg.DashboardAddr, "api", cfg.APIBaseURL)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	logger.Info("server exiting")
}
