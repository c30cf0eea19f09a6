package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"stockpwa/internal/handlers"
	"stockpwa/internal/jobs"
	"stockpwa/internal/jobs/background"
	"stockpwa/internal/services"
	"stockpwa/internal/store"
	"stockpwa/internal/validation"
)

const version = "1.0.0"

func main() {
	// Low stock check interval
	alertInterval := 30 * time.Minute
	if intervalStr := os.Getenv("LOW_STOCK_CHECK_INTERVAL_MINUTES"); intervalStr != "" {
		if minutes, err := strconv.Atoi(intervalStr); err == nil && minutes > 0 {
			alertInterval = time.Duration(minutes) * time.Minute
		}
	}

	// Create stores
	inventoryStore := store.NewInMemoryInventoryStore()
	movementLedger := store.NewInMemoryMovementLedger()

	// Create services
	inventoryService := services.NewInventoryService(inventoryStore, movementLedger)

	// Create handlers
	inventoryHandlers := handlers.NewInventoryHandlers(inventoryService)
	healthHandlers := handlers.NewHealthHandlers(inventoryStore, version)

	// Background low stock alerts
	alertsService := jobs.NewLowStockAlertService(inventoryService)
	scheduler, err := background.NewJobScheduler(alertsService, alertInterval)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start job scheduler: %v", err)
	}
	defer scheduler.Stop()

	// Create Echo instance
	e := echo.New()
	e.Validator = validation.NewRequestValidator()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch,
			http.MethodPost, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		// The PWA frontend may be served from any origin.
		UnsafeWildcardOriginWithAllowCredentials: true,
	}))
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)
	e.GET("/health/live", healthHandlers.LivenessCheck)

	// API routes
	api := e.Group("/api")
	api.POST("/move", inventoryHandlers.RegisterMove)
	api.GET("/inventory", inventoryHandlers.ListInventory)
	api.GET("/moves", inventoryHandlers.ListMovements)
	api.POST("/reset", inventoryHandlers.ResetInventory)

	// Start server
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Fatalf("Invalid port %s: %v", portStr, err)
	}

	log.Printf("Stock PWA server v%s starting on port %d", version, port)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", port)))
}
