package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventoryItem_Status(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		minStock int
		want     StockStatus
	}{
		{"no threshold configured", 5, 0, StatusOK},
		{"no threshold and no stock", 0, 0, StatusOK},
		{"negative threshold reads ok", 5, -1, StatusOK},
		{"out of stock with threshold", 0, 3, StatusLow},
		{"at threshold", 3, 5, StatusAttention},
		{"exactly at threshold boundary", 5, 5, StatusAttention},
		{"above threshold", 10, 5, StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &InventoryItem{Quantity: tt.quantity, MinStock: tt.minStock}
			assert.Equal(t, tt.want, item.Status())
		})
	}
}
