package testutil

import (
	"context"
	"sync"

	"github.com/orderdesk/orderdesk/internal/domain/order"
)

// InvoiceDetailSets holds the three result sets the detail procedure would
// return for one invoice number.
type InvoiceDetailSets struct {
	Customer  *order.CustomerSummary
	Order     *order.OrderSummary
	LineItems []order.LineItemRow
}

// InMemoryOrderStore implements order.Repository over seeded row-sets so
// service tests can exercise the aggregation paths without a database.
type InMemoryOrderStore struct {
	mu sync.RWMutex

	orders      []*order.Order
	invoiceRows []order.FlatRow
	details     map[int]InvoiceDetailSets

	createdCommands []*order.CreateCommand
	nextInvoice     int
	err             error
}

// NewInMemoryOrderStore creates a new in-memory order store
func NewInMemoryOrderStore() *InMemoryOrderStore {
	return &InMemoryOrderStore{
		details:     map[int]InvoiceDetailSets{},
		nextInvoice: 1,
	}
}

// SeedOrders replaces the order header rows
func (s *InMemoryOrderStore) SeedOrders(orders ...*order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = orders
}

// SeedInvoiceRows replaces the denormalized invoice rows
func (s *InMemoryOrderStore) SeedInvoiceRows(rows ...order.FlatRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoiceRows = rows
}

// SeedDetail sets the detail result sets for one invoice number
func (s *InMemoryOrderStore) SeedDetail(invoiceNumber int, sets InvoiceDetailSets) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details[invoiceNumber] = sets
}

// SetNextInvoiceNumber sets the number the next Create call assigns
func (s *InMemoryOrderStore) SetNextInvoiceNumber(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextInvoice = n
}

// SetError makes every subsequent call fail with err
func (s *InMemoryOrderStore) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// CreatedCommands returns the commands dispatched through Create
func (s *InMemoryOrderStore) CreatedCommands() []*order.CreateCommand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.createdCommands
}

// Clear removes all seeded data
func (s *InMemoryOrderStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = nil
	s.invoiceRows = nil
	s.details = map[int]InvoiceDetailSets{}
	s.createdCommands = nil
	s.nextInvoice = 1
	s.err = nil
}

func (s *InMemoryOrderStore) ListAll(_ context.Context) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.orders, nil
}

func (s *InMemoryOrderStore) ListInvoiceRows(_ context.Context) ([]order.FlatRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.invoiceRows, nil
}

func (s *InMemoryOrderStore) GetInvoiceDetail(_ context.Context, invoiceNumber int) (*order.CustomerSummary, *order.OrderSummary, []order.LineItemRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, nil, nil, s.err
	}
	sets := s.details[invoiceNumber]
	return sets.Customer, sets.Order, sets.LineItems, nil
}

func (s *InMemoryOrderStore) Create(_ context.Context, cmd *order.CreateCommand) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	s.createdCommands = append(s.createdCommands, cmd)
	n := s.nextInvoice
	s.nextInvoice++
	return n, nil
}
