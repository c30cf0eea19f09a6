package models

import (
	"time"

	"github.com/google/uuid"
)

// Movement is one accepted inventory move, recorded in the in-memory
// ledger. Rejected moves are never recorded. TotalCost is only set for
// purchases.
type Movement struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Product   string    `json:"product"`
	Quantity  int       `json:"quantity"`
	TotalCost *float64  `json:"total_cost,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
