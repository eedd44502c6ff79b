package customer

import "context"

// Repository defines the interface for customer data access
type Repository interface {
	ListAll(ctx context.Context) ([]*Customer, error)
}
