package store

import (
	"context"
	"sort"
	"sync"

	"stockpwa/internal/models"
)

// InventoryStore is the process-lifetime mapping from normalized product
// key to inventory state. Items are created lazily on first reference and
// only removed by Reset.
type InventoryStore interface {
	GetOrCreate(ctx context.Context, productKey string) (*models.InventoryItem, error)
	Save(ctx context.Context, productKey string, item *models.InventoryItem) error
	List(ctx context.Context) ([]models.InventoryEntry, error)
	Count(ctx context.Context) (int, error)
	Reset(ctx context.Context) error
}

type inMemoryInventoryStore struct {
	mu    sync.RWMutex
	items map[string]models.InventoryItem
}

// NewInMemoryInventoryStore creates an empty in-memory inventory store.
func NewInMemoryInventoryStore() InventoryStore {
	return &inMemoryInventoryStore{
		items: make(map[string]models.InventoryItem),
	}
}

// GetOrCreate returns a copy of the stored item, inserting a zeroed one on
// first reference. Mutations are written back through Save.
func (s *inMemoryInventoryStore) GetOrCreate(_ context.Context, productKey string) (*models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[productKey]
	if !ok {
		item = models.InventoryItem{}
		s.items[productKey] = item
	}

	copied := item
	return &copied, nil
}

func (s *inMemoryInventoryStore) Save(_ context.Context, productKey string, item *models.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[productKey] = *item
	return nil
}

// List returns all entries ordered by ascending product key.
func (s *inMemoryInventoryStore) List(_ context.Context) ([]models.InventoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.items))
	for key := range s.items {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]models.InventoryEntry, 0, len(keys))
	for _, key := range keys {
		item := s.items[key]
		entries = append(entries, models.InventoryEntry{ProductKey: key, Item: &item})
	}
	return entries, nil
}

func (s *inMemoryInventoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items), nil
}

// Reset removes all entries, returning the store to its initial state.
func (s *inMemoryInventoryStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]models.InventoryItem)
	return nil
}
