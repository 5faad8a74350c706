package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	httpapi "github.com/yeonwoo-j/kma-midterm-forecast/internal/api/http"
	"github.com/yeonwoo-j/kma-midterm-forecast/internal/config"
	"github.com/yeonwoo-j/kma-midterm-forecast/internal/forecast"
	"github.com/yeonwoo-j/kma-midterm-forecast/internal/forecast/kma"
	"github.com/yeonwoo-j/kma-midterm-forecast/internal/scheduler"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound feed calls. The client timeout is the
	// only cancellation path for an in-flight fetch.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Feed client for the three mid-term endpoints.
	feed := kma.NewClient(httpClient, cfg.KMABaseURL, cfg.KMAAPIKey)

	// Region resolution over the built-in name->code table.
	regions := forecast.NewRegionResolver(forecast.DefaultRegionCodes())

	// Core service: caches, baseTime resolution, aggregation.
	service := forecast.NewService(feed, regions)

	// Scheduler that clears the forecast caches in bulk.
	sched := scheduler.New(cfg.EvictInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "kma-midterm-forecast",
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
			"service": "kma-midterm-forecast",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	// Start server with graceful shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
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
