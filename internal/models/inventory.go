package models

// StockStatus is the derived stock-health label exposed on the wire.
type StockStatus string

const (
	StatusOK        StockStatus = "OK"
	StatusAttention StockStatus = "Atento"
	StatusLow       StockStatus = "Bajo"
)

// Move types accepted by POST /api/move.
const (
	MoveTypePurchase = "purchase"
	MoveTypeSale     = "sale"
)

// InventoryItem is the stored state for one normalized product key.
// UnitCost is the weighted-average cost per unit and stays 0 until the
// first purchase. MinStock of 0 means no threshold is configured.
type InventoryItem struct {
	Quantity int     `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
	MinStock int     `json:"min_stock"`
}

// Status derives the stock-health label from quantity and min_stock.
// Branch order matters: an unconfigured threshold always reads OK.
func (i *InventoryItem) Status() StockStatus {
	if i.MinStock <= 0 {
		return StatusOK
	}
	if i.Quantity <= 0 {
		return StatusLow
	}
	if i.Quantity <= i.MinStock {
		return StatusAttention
	}
	return StatusOK
}

// MovePayload is the request body of POST /api/move. TotalCost is required
// for purchases and ignored for sales; MinStock is only applied on purchases.
type MovePayload struct {
	Type      string   `json:"type" validate:"required,oneof=sale purchase"`
	Product   string   `json:"product" validate:"required"`
	Quantity  int      `json:"quantity" validate:"required,gt=0"`
	TotalCost *float64 `json:"total_cost" validate:"omitnil,gt=0"`
	MinStock  *int     `json:"min_stock" validate:"omitnil,gte=0"`
}

// InventoryResponse is the per-product view returned by /api/move and
// /api/inventory. UnitCost is rounded to 2 decimals for display.
type InventoryResponse struct {
	Product  string      `json:"product"`
	Quantity int         `json:"quantity"`
	UnitCost float64     `json:"unit_cost"`
	MinStock int         `json:"min_stock"`
	Status   StockStatus `json:"status"`
}

// InventoryEntry pairs a normalized product key with its stored item.
type InventoryEntry struct {
	ProductKey string
	Item       *InventoryItem
}
