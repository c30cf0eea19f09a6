package handlers

import (
	"net/http"
	"time"

	"stockpwa/internal/store"

	"github.com/labstack/echo/v4"
)

// HealthHandlers handles health check and monitoring endpoints
type HealthHandlers struct {
	inventoryStore store.InventoryStore
	version        string
}

// NewHealthHandlers creates a new health handlers instance
func NewHealthHandlers(inventoryStore store.InventoryStore, version string) *HealthHandlers {
	return &HealthHandlers{
		inventoryStore: inventoryStore,
		version:        version,
	}
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
	Products  int    `json:"products"`
}

// HealthCheck reports process health and the number of tracked products.
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	count, err := h.inventoryStore.Count(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
		})
	}

	return c.JSON(http.StatusOK, &HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
		Products:  count,
	})
}

// ReadinessCheck determines if the application is ready to serve traffic
func (h *HealthHandlers) ReadinessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ready",
		"message": "All systems operational",
	})
}

// LivenessCheck determines if the application is running (basic liveness probe)
func (h *HealthHandlers) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "alive",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
