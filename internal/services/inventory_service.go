package services

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"stockpwa/internal/models"
	"stockpwa/internal/store"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Business-rule failures reported to the HTTP layer. The messages are the
// exact strings the API contract exposes.
var (
	ErrProductRequired   = errors.New("El producto es obligatorio.")
	ErrTotalCostRequired = errors.New("El total gastado es obligatorio.")
	ErrInsufficientStock = errors.New("No hay suficiente stock para completar la venta.")
)

type InventoryService interface {
	RegisterMove(ctx context.Context, move *models.MovePayload) (*models.InventoryResponse, error)
	ListInventory(ctx context.Context) ([]*models.InventoryResponse, error)
	ListMovements(ctx context.Context, limit int) ([]*models.Movement, error)
	Reset(ctx context.Context) error
}

type inventoryService struct {
	inventoryStore store.InventoryStore
	movementLedger store.MovementLedger

	// Serializes move application. A move is a read-modify-write against
	// shared state and the HTTP layer handles requests concurrently.
	mu sync.Mutex
}

func NewInventoryService(inventoryStore store.InventoryStore, movementLedger store.MovementLedger) InventoryService {
	return &inventoryService{
		inventoryStore: inventoryStore,
		movementLedger: movementLedger,
	}
}

// RegisterMove validates and applies a single purchase or sale and returns
// the resulting item view. Rejected moves leave the item unchanged.
func (s *inventoryService) RegisterMove(ctx context.Context, move *models.MovePayload) (*models.InventoryResponse, error) {
	displayName := strings.TrimSpace(move.Product)
	productKey := strings.ToLower(displayName)
	if productKey == "" {
		return nil, ErrProductRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.inventoryStore.GetOrCreate(ctx, productKey)
	if err != nil {
		return nil, err
	}

	var totalCost *float64

	switch move.Type {
	case models.MoveTypePurchase:
		if move.TotalCost == nil {
			return nil, ErrTotalCostRequired
		}
		unitCost := *move.TotalCost / float64(move.Quantity)
		totalUnits := item.Quantity + move.Quantity
		if totalUnits == 0 {
			// Unreachable while quantity must be positive; kept so the
			// weighted average never divides by zero.
			item.UnitCost = unitCost
		} else {
			existingValue := float64(item.Quantity) * item.UnitCost
			newValue := float64(move.Quantity) * unitCost
			item.UnitCost = (existingValue + newValue) / float64(totalUnits)
		}
		item.Quantity += move.Quantity
		if move.MinStock != nil {
			item.MinStock = *move.MinStock
		}
		totalCost = move.TotalCost
	default: // sale
		if move.Quantity > item.Quantity {
			return nil, ErrInsufficientStock
		}
		item.Quantity -= move.Quantity
	}

	if err := s.inventoryStore.Save(ctx, productKey, item); err != nil {
		return nil, err
	}

	movement := &models.Movement{
		ID:        uuid.New(),
		Type:      move.Type,
		Product:   displayName,
		Quantity:  move.Quantity,
		TotalCost: totalCost,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.movementLedger.Append(ctx, movement); err != nil {
		log.Printf("Failed to record movement for %s: %v", productKey, err)
	}

	return toResponse(displayName, item), nil
}

// ListInventory projects the whole store into response views ordered by
// product key, with product names title-cased from the stored key.
func (s *inventoryService) ListInventory(ctx context.Context) ([]*models.InventoryResponse, error) {
	entries, err := s.inventoryStore.List(ctx)
	if err != nil {
		return nil, err
	}

	// A cases.Caser is not safe for concurrent use, so build one per call.
	titleCaser := cases.Title(language.Und)

	responses := make([]*models.InventoryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toResponse(titleCaser.String(entry.ProductKey), entry.Item))
	}
	return responses, nil
}

func (s *inventoryService) ListMovements(ctx context.Context, limit int) ([]*models.Movement, error) {
	return s.movementLedger.List(ctx, limit)
}

// Reset clears the store and the movement ledger.
func (s *inventoryService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inventoryStore.Reset(ctx); err != nil {
		return err
	}
	return s.movementLedger.Reset(ctx)
}

func toResponse(product string, item *models.InventoryItem) *models.InventoryResponse {
	return &models.InventoryResponse{
		Product:  product,
		Quantity: item.Quantity,
		UnitCost: math.Round(item.UnitCost*100) / 100,
		MinStock: item.MinStock,
		Status:   item.Status(),
	}
}
