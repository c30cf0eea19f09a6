package store

import (
	"context"
	"sync"

	"stockpwa/internal/models"
)

// maxLedgerEntries bounds the in-memory ledger so a long-running process
// without resets does not grow without limit.
const maxLedgerEntries = 1000

// MovementLedger records accepted moves, newest first on read.
type MovementLedger interface {
	Append(ctx context.Context, movement *models.Movement) error
	List(ctx context.Context, limit int) ([]*models.Movement, error)
	Reset(ctx context.Context) error
}

type inMemoryMovementLedger struct {
	mu        sync.RWMutex
	movements []models.Movement
}

// NewInMemoryMovementLedger creates an empty in-memory movement ledger.
func NewInMemoryMovementLedger() MovementLedger {
	return &inMemoryMovementLedger{}
}

func (l *inMemoryMovementLedger) Append(_ context.Context, movement *models.Movement) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.movements = append(l.movements, *movement)
	if len(l.movements) > maxLedgerEntries {
		l.movements = l.movements[len(l.movements)-maxLedgerEntries:]
	}
	return nil
}

// List returns up to limit movements, most recent first. A non-positive
// limit returns everything retained.
func (l *inMemoryMovementLedger) List(_ context.Context, limit int) ([]*models.Movement, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if limit <= 0 || limit > len(l.movements) {
		limit = len(l.movements)
	}

	movements := make([]*models.Movement, 0, limit)
	for i := len(l.movements) - 1; i >= len(l.movements)-limit; i-- {
		movement := l.movements[i]
		movements = append(movements, &movement)
	}
	return movements, nil
}

func (l *inMemoryMovementLedger) Reset(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.movements = nil
	return nil
}
