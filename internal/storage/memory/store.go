// Package memory implements the order Store in process memory. It backs
// tests and store-less single-terminal runs where no database is configured.
package memory

import (
	"context"
	"sync"

	"github.com/bersihin/laundry-pos/internal/domain/order"
)

var _ order.Store = (*Store)(nil)

// Store keeps the order snapshot in memory.
type Store struct {
	mu     sync.RWMutex
	orders []order.Order
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// LoadOrders returns a copy of the last saved snapshot, or (nil, nil) when
// nothing has been saved yet.
func (s *Store) LoadOrders(_ context.Context) ([]order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.orders == nil {
		return nil, nil
	}
	out := make([]order.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

// SaveOrders replaces the stored snapshot with a copy of orders.
func (s *Store) SaveOrders(_ context.Context, orders []order.Order) error {
	snapshot := make([]order.Order, len(orders))
	copy(snapshot, orders)

	s.mu.Lock()
	s.orders = snapshot
	s.mu.Unlock()
	return nil
}
