package jobs

import (
	"context"
	"log"

	"stockpwa/internal/models"
	"stockpwa/internal/services"
)

// LowStockAlertService scans the inventory for products whose stock level
// has fallen to Atento or Bajo and logs them.
type LowStockAlertService struct {
	inventoryService services.InventoryService
}

type LowStockAlert struct {
	Product      string
	CurrentStock int
	MinStock     int
	Status       models.StockStatus
}

func NewLowStockAlertService(inventoryService services.InventoryService) *LowStockAlertService {
	return &LowStockAlertService{
		inventoryService: inventoryService,
	}
}

// CheckLowStock returns every product whose derived status is not OK.
func (a *LowStockAlertService) CheckLowStock(ctx context.Context) ([]LowStockAlert, error) {
	inventory, err := a.inventoryService.ListInventory(ctx)
	if err != nil {
		log.Printf("Failed to list inventory for low stock check: %v", err)
		return nil, err
	}

	var alerts []LowStockAlert

	for _, item := range inventory {
		if item.Status == models.StatusOK {
			continue
		}

		alert := LowStockAlert{
			Product:      item.Product,
			CurrentStock: item.Quantity,
			MinStock:     item.MinStock,
			Status:       item.Status,
		}
		alerts = append(alerts, alert)
	}

	return alerts, nil
}

func (a *LowStockAlertService) LogLowStockAlerts(alerts []LowStockAlert) {
	if len(alerts) == 0 {
		log.Println("No low stock alerts to log")
		return
	}

	log.Printf("Low stock alerts for %d products:", len(alerts))
	for _, alert := range alerts {
		log.Printf("- Product '%s' has %d units (min stock: %d, status: %s)",
			alert.Product,
			alert.CurrentStock,
			alert.MinStock,
			alert.Status)
	}
}

// ScheduledLowStockCheck is the entrypoint the background scheduler runs.
func (a *LowStockAlertService) ScheduledLowStockCheck(ctx context.Context) error {
	log.Println("Starting scheduled low stock check")

	alerts, err := a.CheckLowStock(ctx)
	if err != nil {
		log.Printf("Scheduled low stock check failed: %v", err)
		return err
	}
	a.LogLowStockAlerts(alerts)

	log.Println("Scheduled low stock check completed successfully")
	return nil
}
