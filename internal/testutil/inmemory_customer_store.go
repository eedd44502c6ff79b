package testutil

import (
	"context"
	"sync"

	"github.com/orderdesk/orderdesk/internal/domain/customer"
)

// InMemoryCustomerStore implements customer.Repository
type InMemoryCustomerStore struct {
	mu        sync.RWMutex
	customers []*customer.Customer
	err       error

	// ListCalls counts repository hits so cache tests can tell a cached
	// response from a repository round trip
	ListCalls int
}

// NewInMemoryCustomerStore creates a new in-memory customer store
func NewInMemoryCustomerStore() *InMemoryCustomerStore {
	return &InMemoryCustomerStore{}
}

// Seed replaces the customer rows
func (s *InMemoryCustomerStore) Seed(customers ...*customer.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = customers
}

// SetError makes every subsequent call fail with err
func (s *InMemoryCustomerStore) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Clear removes all seeded data
func (s *InMemoryCustomerStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = nil
	s.err = nil
	s.ListCalls = 0
}

func (s *InMemoryCustomerStore) ListAll(_ context.Context) ([]*customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ListCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.customers, nil
}
