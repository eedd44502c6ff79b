package dto

import (
	"fmt"
	"time"

	"github.com/orderdesk/orderdesk/internal/domain/order"
	ierr "github.com/orderdesk/orderdesk/internal/errors"
	"github.com/orderdesk/orderdesk/internal/types"
	"github.com/samber/lo"
)

// OrderItemInput is one requested line item. Extra fields sent by clients
// are dropped at decode time; only productId and quantity survive.
type OrderItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// InvoiceData is the nested header block some clients send instead of
// top-level fields.
type InvoiceData struct {
	CustomerID  string `json:"customerId"`
	InvoiceDate string `json:"invoiceDate"`
}

// CreateOrderRequest accepts every historical shape of the order-creation
// body. Field precedence is resolved in ToCreateCommand:
//
//	customer id: customerId, else invoiceData.customerId
//	invoice date: invoiceDate, else invoiceData.invoiceDate
//	line items: products, else lineItems, else items
type CreateOrderRequest struct {
	CustomerID  string           `json:"customerId"`
	InvoiceDate string           `json:"invoiceDate"`
	InvoiceData *InvoiceData     `json:"invoiceData"`
	Products    []OrderItemInput `json:"products"`
	LineItems   []OrderItemInput `json:"lineItems"`
	Items       []OrderItemInput `json:"items"`
}

// firstPresent returns the first candidate slice present in the request
// body. A field sent as an empty array is present and still wins precedence;
// only absent fields (nil after decode) fall through. It exists so the
// accepted field precedence is encoded in exactly one place.
func firstPresent[T any](candidates ...[]T) []T {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}

// ToCreateCommand validates the request and normalizes it into a creation
// command. Rules run in order and fail fast; each violation is reported as
// a distinct validation error.
func (r *CreateOrderRequest) ToCreateCommand() (*order.CreateCommand, error) {
	invoiceData := r.InvoiceData
	if invoiceData == nil {
		invoiceData = &InvoiceData{}
	}

	customerID, _ := lo.Coalesce(r.CustomerID, invoiceData.CustomerID)
	rawDate, _ := lo.Coalesce(r.InvoiceDate, invoiceData.InvoiceDate)
	items := firstPresent(r.Products, r.LineItems, r.Items)

	if !types.IsGUID(customerID) {
		return nil, ierr.NewError("invalid customer id").
			WithHint("customerId must be a GUID").
			Mark(ierr.ErrValidation)
	}

	if len(items) == 0 {
		return nil, ierr.NewError("no line items").
			WithHint("products must be a non-empty array").
			Mark(ierr.ErrValidation)
	}

	for i, item := range items {
		if !types.IsGUID(item.ProductID) {
			return nil, ierr.NewError("invalid product id").
				WithHint("Each products[].productId must be a GUID").
				WithReportableDetails(map[string]any{"index": i}).
				Mark(ierr.ErrValidation)
		}
		if item.Quantity <= 0 {
			return nil, ierr.NewError("invalid quantity").
				WithHint("Each products[].quantity must be a positive integer").
				WithReportableDetails(map[string]any{"index": i}).
				Mark(ierr.ErrValidation)
		}
	}

	var invoiceDate *time.Time
	if rawDate != "" {
		parsed, err := types.ParseInvoiceDate(rawDate)
		if err != nil {
			return nil, err
		}
		invoiceDate = &parsed
	}

	return &order.CreateCommand{
		CustomerID:  customerID,
		InvoiceDate: invoiceDate,
		Items: lo.Map(items, func(item OrderItemInput, _ int) order.CreateItem {
			return order.CreateItem{ProductID: item.ProductID, Quantity: item.Quantity}
		}),
	}, nil
}

// OrderResponse is one order header row
type OrderResponse struct {
	*order.Order
}

// InvoiceResponse is the nested invoice shape served by the detail endpoints
type InvoiceResponse struct {
	*order.Invoice
}

// CreateOrderResponse carries the invoice number assigned by the create
// procedure
type CreateOrderResponse struct {
	InvoiceNumber int `json:"invoiceNumber"`
}

// Confirmation is the plain-text body of the create endpoint
func (r *CreateOrderResponse) Confirmation() string {
	return fmt.Sprintf("New Invoice Added: %d", r.InvoiceNumber)
}
