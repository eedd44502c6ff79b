package dto

import "github.com/orderdesk/orderdesk/internal/domain/customer"

// CustomerResponse is one customer row
type CustomerResponse struct {
	*customer.Customer
}
