package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/electricity-usage-tracker/internal/api/http"
	"github.com/i474232898/electricity-usage-tracker/internal/config"
	"github.com/i474232898/electricity-usage-tracker/internal/energy"
	"github.com/i474232898/electricity-usage-tracker/internal/store"
	"github.com/i474232898/electricity-usage-tracker/internal/sweeper"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// In-memory per-session store with configured retention.
	memStore := store.NewMemoryStore(cfg.StoreMaxEntries)

	// Core service: estimation + history.
	service := energy.NewService(memStore)

	// Background job purging idle sessions.
	sweep := sweeper.New(memStore, cfg.SessionTTL, cfg.SweepInterval)
	if err := sweep.Start(); err != nil {
		log.Fatalf("failed to start session sweeper: %v", err)
	}
	defer sweep.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "electricity-usage-tracker",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "electricity-usage-tracker",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service, memStore)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
