package order

import "context"

// Repository defines the interface for order data access
type Repository interface {
	// ListAll returns all order header rows
	ListAll(ctx context.Context) ([]*Order, error)

	// ListInvoiceRows returns the denormalized invoice rows for all orders
	ListInvoiceRows(ctx context.Context) ([]FlatRow, error)

	// GetInvoiceDetail returns the three result sets for one invoice:
	// zero-or-one customer row, zero-or-one order row, zero-or-more
	// line-item rows
	GetInvoiceDetail(ctx context.Context, invoiceNumber int) (*CustomerSummary, *OrderSummary, []LineItemRow, error)

	// Create dispatches a creation command and returns the new invoice number
	Create(ctx context.Context, cmd *CreateCommand) (int, error)
}
