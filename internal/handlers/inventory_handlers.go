package handlers

import (
	"errors"
	"net/http"

	"stockpwa/internal/models"
	"stockpwa/internal/services"

	"github.com/labstack/echo/v4"
)

// InventoryHandlers handles inventory-related HTTP requests
type InventoryHandlers struct {
	inventoryService services.InventoryService
}

// NewInventoryHandlers creates a new inventory handlers instance
func NewInventoryHandlers(inventoryService services.InventoryService) *InventoryHandlers {
	return &InventoryHandlers{
		inventoryService: inventoryService,
	}
}

// RegisterMove handles POST /api/move: applies a purchase or sale and
// returns the resulting item view.
func (h *InventoryHandlers) RegisterMove(c echo.Context) error {
	ctx := c.Request().Context()

	var payload models.MovePayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid request format")
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	response, err := h.inventoryService.RegisterMove(ctx, &payload)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductRequired), errors.Is(err, services.ErrInsufficientStock):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrTotalCostRequired):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to register move")
		}
	}

	return c.JSON(http.StatusOK, response)
}

// ListInventory handles GET /api/inventory: all known products ordered by
// normalized key.
func (h *InventoryHandlers) ListInventory(c echo.Context) error {
	ctx := c.Request().Context()

	inventory, err := h.inventoryService.ListInventory(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list inventory")
	}

	return c.JSON(http.StatusOK, inventory)
}

// ListMovementsRequest represents query parameters for listing movements
type ListMovementsRequest struct {
	Limit int `query:"limit"`
}

// ListMovements handles GET /api/moves: recent accepted moves, newest first.
func (h *InventoryHandlers) ListMovements(c echo.Context) error {
	ctx := c.Request().Context()

	var req ListMovementsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}

	// Set defaults
	if req.Limit <= 0 {
		req.Limit = 50
	}
	if req.Limit > 100 {
		req.Limit = 100 // Maximum limit
	}

	movements, err := h.inventoryService.ListMovements(ctx, req.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list movements")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"movements": movements,
		"limit":     req.Limit,
	})
}

// ResetInventory handles POST /api/reset: clears all inventory state.
func (h *InventoryHandlers) ResetInventory(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.inventoryService.Reset(ctx); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to reset inventory")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Inventario reiniciado",
	})
}
