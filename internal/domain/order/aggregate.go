package order

import (
	"sort"

	ierr "github.com/orderdesk/orderdesk/internal/errors"
)

// AggregateFlatRows groups denormalized invoice rows into nested invoices in
// a single pass. The summary fields of an invoice come from the first row
// observed for its invoice number; later rows for the same invoice only
// contribute line items. Rows without a line-item id still create the
// invoice but never a line item.
//
// The result is sorted ascending by invoice number. Invoice numbers are
// allocated sequentially, so consumers rely on this for chronological
// listing.
func AggregateFlatRows(rows []FlatRow) []*Invoice {
	byInvoice := make(map[int]*Invoice, len(rows))
	invoices := make([]*Invoice, 0, len(rows))

	for _, r := range rows {
		inv, ok := byInvoice[r.InvoiceNumber]
		if !ok {
			inv = &Invoice{
				CustomerDetail: r.CustomerSummary,
				OrderDetail: OrderSummary{
					InvoiceNumber: r.InvoiceNumber,
					InvoiceDate:   r.InvoiceDate,
					CustomerID:    r.ResolveCustomerID(),
				},
				LineItems: []LineItem{},
			}
			byInvoice[r.InvoiceNumber] = inv
			invoices = append(invoices, inv)
		}

		if item, ok := r.ToLineItem(); ok {
			inv.LineItems = append(inv.LineItems, item)
		}
	}

	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].OrderDetail.InvoiceNumber < invoices[j].OrderDetail.InvoiceNumber
	})

	return invoices
}

// BuildDetail assembles a single invoice from the three result sets of the
// detail procedure. Missing customer or order rows mean the invoice does not
// exist. Placeholder line-item rows produced by the left join are dropped,
// so an invoice without items carries an empty list rather than a null-like
// entry.
func BuildDetail(cust *CustomerSummary, ord *OrderSummary, items []LineItemRow) (*Invoice, error) {
	if cust == nil || ord == nil {
		return nil, ierr.NewError("order not found").
			WithHint("Order not found").
			Mark(ierr.ErrNotFound)
	}

	lineItems := make([]LineItem, 0, len(items))
	for _, row := range items {
		if item, ok := row.ToLineItem(); ok {
			lineItems = append(lineItems, item)
		}
	}

	return &Invoice{
		CustomerDetail: *cust,
		OrderDetail:    *ord,
		LineItems:      lineItems,
	}, nil
}
