package testutil

import (
	"context"
	"sync"

	"github.com/orderdesk/orderdesk/internal/domain/product"
)

// InMemoryProductStore implements product.Repository
type InMemoryProductStore struct {
	mu       sync.RWMutex
	products []*product.Product
	err      error

	// ListCalls counts repository hits, see InMemoryCustomerStore
	ListCalls int
}

// NewInMemoryProductStore creates a new in-memory product store
func NewInMemoryProductStore() *InMemoryProductStore {
	return &InMemoryProductStore{}
}

// Seed replaces the product rows
func (s *InMemoryProductStore) Seed(products ...*product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
}

// SetError makes every subsequent call fail with err
func (s *InMemoryProductStore) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Clear removes all seeded data
func (s *InMemoryProductStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = nil
	s.err = nil
	s.ListCalls = 0
}

func (s *InMemoryProductStore) ListAll(_ context.Context) ([]*product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ListCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}
