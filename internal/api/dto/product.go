package dto

import "github.com/orderdesk/orderdesk/internal/domain/product"

// ProductResponse is one product row
type ProductResponse struct {
	*product.Product
}
