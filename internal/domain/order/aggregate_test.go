package order

import (
	"testing"
	"time"

	ierr "github.com/orderdesk/orderdesk/internal/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCustomer(id, name string) CustomerSummary {
	return CustomerSummary{
		CustomerID:           id,
		CustomerName:         name,
		CustomerAddress1:     "1 Main St",
		CustomerCity:         "Springfield",
		CustomerState:        "IL",
		CustomerPostalCode:   "62701",
		CustomerEmailAddress: name + "@example.com",
	}
}

func headerRow(invoiceNumber int, cust CustomerSummary, invoiceDate *time.Time) FlatRow {
	return FlatRow{
		InvoiceNumber:   invoiceNumber,
		CustomerSummary: cust,
		LineItemRow:     LineItemRow{InvoiceDate: invoiceDate},
	}
}

func itemRow(invoiceNumber int, cust CustomerSummary, lineItemID, productID string, quantity int) FlatRow {
	return FlatRow{
		InvoiceNumber:   invoiceNumber,
		CustomerSummary: cust,
		LineItemRow: LineItemRow{
			LineItemID:  lo.ToPtr(lineItemID),
			ProductID:   lo.ToPtr(productID),
			Quantity:    lo.ToPtr(quantity),
			ProductName: lo.ToPtr("Widget"),
			ProductCost: lo.ToPtr(decimal.NewFromFloat(9.99)),
			TotalCost:   lo.ToPtr(decimal.NewFromFloat(9.99 * float64(quantity))),
		},
	}
}

func TestAggregateFlatRows(t *testing.T) {
	cust := testCustomer("c1", "acme")

	t.Run("groups_rows_and_sorts_by_invoice_number", func(t *testing.T) {
		rows := []FlatRow{
			headerRow(2, cust, nil),
			itemRow(1, cust, "li1", "p1", 2),
			itemRow(1, cust, "li2", "p2", 1),
		}

		invoices := AggregateFlatRows(rows)
		require.Len(t, invoices, 2)

		assert.Equal(t, 1, invoices[0].OrderDetail.InvoiceNumber)
		assert.Equal(t, 2, invoices[1].OrderDetail.InvoiceNumber)

		require.Len(t, invoices[0].LineItems, 2)
		assert.Equal(t, "li1", invoices[0].LineItems[0].LineItemID)
		assert.Equal(t, "li2", invoices[0].LineItems[1].LineItemID)
		assert.Equal(t, 2, invoices[0].LineItems[0].Quantity)

		// the header-only row creates an invoice with no line items
		assert.NotNil(t, invoices[1].LineItems)
		assert.Empty(t, invoices[1].LineItems)
	})

	t.Run("one_invoice_per_distinct_invoice_number", func(t *testing.T) {
		rows := []FlatRow{
			itemRow(3, cust, "li1", "p1", 1),
			itemRow(1, cust, "li2", "p1", 1),
			itemRow(3, cust, "li3", "p2", 1),
			itemRow(2, cust, "li4", "p1", 1),
			itemRow(1, cust, "li5", "p2", 1),
		}

		invoices := AggregateFlatRows(rows)
		require.Len(t, invoices, 3)
		assert.Equal(t, 1, invoices[0].OrderDetail.InvoiceNumber)
		assert.Equal(t, 2, invoices[1].OrderDetail.InvoiceNumber)
		assert.Equal(t, 3, invoices[2].OrderDetail.InvoiceNumber)

		assert.Len(t, invoices[0].LineItems, 2)
		assert.Len(t, invoices[1].LineItems, 1)
		assert.Len(t, invoices[2].LineItems, 2)
	})

	t.Run("summary_captured_from_first_row", func(t *testing.T) {
		first := itemRow(7, testCustomer("c1", "first"), "li1", "p1", 1)
		second := itemRow(7, testCustomer("c2", "second"), "li2", "p2", 1)

		invoices := AggregateFlatRows([]FlatRow{first, second})
		require.Len(t, invoices, 1)

		assert.Equal(t, "first", invoices[0].CustomerDetail.CustomerName)
		assert.Equal(t, "c1", invoices[0].OrderDetail.CustomerID)
		assert.Len(t, invoices[0].LineItems, 2)
	})

	t.Run("prefers_order_customer_id_when_present", func(t *testing.T) {
		row := itemRow(1, cust, "li1", "p1", 1)
		row.OrderCustomerID = lo.ToPtr("order-cust")

		invoices := AggregateFlatRows([]FlatRow{row})
		require.Len(t, invoices, 1)
		assert.Equal(t, "order-cust", invoices[0].OrderDetail.CustomerID)

		// customer detail keeps the row's own customer id
		assert.Equal(t, "c1", invoices[0].CustomerDetail.CustomerID)
	})

	t.Run("falls_back_to_customer_id", func(t *testing.T) {
		invoices := AggregateFlatRows([]FlatRow{itemRow(1, cust, "li1", "p1", 1)})
		require.Len(t, invoices, 1)
		assert.Equal(t, "c1", invoices[0].OrderDetail.CustomerID)
	})

	t.Run("empty_line_item_id_is_not_a_line_item", func(t *testing.T) {
		row := headerRow(1, cust, nil)
		row.LineItemID = lo.ToPtr("")

		invoices := AggregateFlatRows([]FlatRow{row})
		require.Len(t, invoices, 1)
		assert.Empty(t, invoices[0].LineItems)
	})

	t.Run("empty_input", func(t *testing.T) {
		assert.Empty(t, AggregateFlatRows(nil))
	})

	t.Run("carries_invoice_date_onto_summary_and_items", func(t *testing.T) {
		date := time.Date(2024, 12, 20, 14, 30, 0, 0, time.UTC)
		row := itemRow(1, cust, "li1", "p1", 2)
		row.LineItemRow.InvoiceDate = &date

		invoices := AggregateFlatRows([]FlatRow{row})
		require.Len(t, invoices, 1)
		require.NotNil(t, invoices[0].OrderDetail.InvoiceDate)
		assert.Equal(t, date, *invoices[0].OrderDetail.InvoiceDate)
		require.NotNil(t, invoices[0].LineItems[0].InvoiceDate)
		assert.Equal(t, date, *invoices[0].LineItems[0].InvoiceDate)
	})
}

func TestBuildDetail(t *testing.T) {
	cust := testCustomer("c1", "acme")
	ord := OrderSummary{InvoiceNumber: 5, CustomerID: "c1"}

	item := func(id string) LineItemRow {
		return LineItemRow{
			LineItemID: lo.ToPtr(id),
			ProductID:  lo.ToPtr("p1"),
			Quantity:   lo.ToPtr(1),
		}
	}

	t.Run("assembles_invoice", func(t *testing.T) {
		invoice, err := BuildDetail(&cust, &ord, []LineItemRow{item("li1"), item("li2")})
		require.NoError(t, err)

		assert.Equal(t, cust, invoice.CustomerDetail)
		assert.Equal(t, ord, invoice.OrderDetail)
		require.Len(t, invoice.LineItems, 2)
		assert.Equal(t, "li1", invoice.LineItems[0].LineItemID)
		assert.Equal(t, "li2", invoice.LineItems[1].LineItemID)
	})

	t.Run("not_found_without_customer_row", func(t *testing.T) {
		_, err := BuildDetail(nil, &ord, []LineItemRow{item("li1")})
		require.Error(t, err)
		assert.True(t, ierr.IsNotFound(err))
	})

	t.Run("not_found_without_order_row", func(t *testing.T) {
		_, err := BuildDetail(&cust, nil, []LineItemRow{item("li1")})
		require.Error(t, err)
		assert.True(t, ierr.IsNotFound(err))
	})

	t.Run("strips_placeholder_rows", func(t *testing.T) {
		invoice, err := BuildDetail(&cust, &ord, []LineItemRow{{}})
		require.NoError(t, err)
		assert.NotNil(t, invoice.LineItems)
		assert.Empty(t, invoice.LineItems)
	})

	t.Run("no_line_item_rows", func(t *testing.T) {
		invoice, err := BuildDetail(&cust, &ord, nil)
		require.NoError(t, err)
		assert.Empty(t, invoice.LineItems)
	})
}
