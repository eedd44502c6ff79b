package order

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Order represents one order header row as returned by usp_order_get_all
type Order struct {
	InvoiceNumber int        `db:"invoiceNumber" json:"invoiceNumber"`
	InvoiceDate   *time.Time `db:"invoiceDate" json:"invoiceDate"`
	CustomerID    string     `db:"customerId" json:"customerId"`
}

// CustomerSummary carries the customer columns of an invoice row
type CustomerSummary struct {
	CustomerID           string `db:"customerId" json:"customerId"`
	CustomerName         string `db:"customerName" json:"customerName"`
	CustomerAddress1     string `db:"customerAddress1" json:"customerAddress1"`
	CustomerAddress2     string `db:"customerAddress2" json:"customerAddress2"`
	CustomerCity         string `db:"customerCity" json:"customerCity"`
	CustomerState        string `db:"customerState" json:"customerState"`
	CustomerPostalCode   string `db:"customerPostalCode" json:"customerPostalCode"`
	CustomerTelephone    string `db:"customerTelephone" json:"customerTelephone"`
	CustomerContactName  string `db:"customerContactName" json:"customerContactName"`
	CustomerEmailAddress string `db:"customerEmailAddress" json:"customerEmailAddress"`
}

// OrderSummary carries the order columns of an invoice row
type OrderSummary struct {
	InvoiceNumber int        `db:"invoiceNumber" json:"invoiceNumber"`
	InvoiceDate   *time.Time `db:"invoiceDate" json:"invoiceDate"`
	CustomerID    string     `db:"customerId" json:"customerId"`
}

// LineItemRow is one row of the line-item result set. The source query is a
// left join from order to line items, so every column may be null when the
// order has no items. Presence of LineItemID decides whether the row carries
// a real line item.
type LineItemRow struct {
	LineItemID  *string          `db:"lineItemId" json:"lineItemId"`
	ProductID   *string          `db:"productId" json:"productId"`
	Quantity    *int             `db:"quantity" json:"quantity"`
	InvoiceDate *time.Time       `db:"invoiceDate" json:"invoiceDate"`
	ProductName *string          `db:"productName" json:"productName"`
	ProductCost *decimal.Decimal `db:"productCost" json:"productCost"`
	TotalCost   *decimal.Decimal `db:"totalCost" json:"totalCost"`
}

// ToLineItem converts the row to a LineItem. Returns false when the
// line-item discriminator is absent, which both aggregation paths use to
// drop placeholder join rows.
func (r LineItemRow) ToLineItem() (LineItem, bool) {
	if r.LineItemID == nil || *r.LineItemID == "" {
		return LineItem{}, false
	}
	return LineItem{
		LineItemID:  *r.LineItemID,
		ProductID:   lo.FromPtr(r.ProductID),
		Quantity:    lo.FromPtr(r.Quantity),
		InvoiceDate: r.InvoiceDate,
		ProductName: lo.FromPtr(r.ProductName),
		ProductCost: lo.FromPtr(r.ProductCost),
		TotalCost:   lo.FromPtr(r.TotalCost),
	}, true
}

// FlatRow is one denormalized row of usp_order_get_all_invoice_details_flat:
// invoice header plus at most one line item. The invoiceDate column scans
// through the embedded LineItemRow and serves both the order summary and the
// per-item copy.
type FlatRow struct {
	InvoiceNumber int `db:"invoiceNumber" json:"invoiceNumber"`
	CustomerSummary
	// OrderCustomerID is only populated by some variants of the flat
	// procedure; CustomerID is the fallback.
	OrderCustomerID *string `db:"orderCustomerId" json:"orderCustomerId,omitempty"`
	LineItemRow
}

// ResolveCustomerID applies the order-level customer id fallback
func (r FlatRow) ResolveCustomerID() string {
	if r.OrderCustomerID != nil && *r.OrderCustomerID != "" {
		return *r.OrderCustomerID
	}
	return r.CustomerSummary.CustomerID
}

// LineItem is a materialized invoice line
type LineItem struct {
	LineItemID  string          `json:"lineItemId"`
	ProductID   string          `json:"productId"`
	Quantity    int             `json:"quantity"`
	InvoiceDate *time.Time      `json:"invoiceDate"`
	ProductName string          `json:"productName"`
	ProductCost decimal.Decimal `json:"productCost"`
	TotalCost   decimal.Decimal `json:"totalCost"`
}

// Invoice is the nested representation of one order: customer summary, order
// summary and its line items in source order
type Invoice struct {
	CustomerDetail CustomerSummary `json:"customerDetail"`
	OrderDetail    OrderSummary    `json:"orderDetail"`
	LineItems      []LineItem      `json:"lineItems"`
}
