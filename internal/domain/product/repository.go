package product

import "context"

// Repository defines the interface for product data access
type Repository interface {
	ListAll(ctx context.Context) ([]*Product, error)
}
