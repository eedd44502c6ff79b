package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/orderdesk/orderdesk/internal/domain/order"
	ierr "github.com/orderdesk/orderdesk/internal/errors"
	"github.com/orderdesk/orderdesk/internal/logger"
	"github.com/orderdesk/orderdesk/internal/postgres"
)

// Stored procedures backing the order endpoints. Their result-set shapes are
// a fixed contract; see the domain row types.
const (
	procOrderGetAll          = "usp_order_get_all"
	procOrderInvoiceRowsFlat = "usp_order_get_all_invoice_details_flat"
	procOrderInvoiceDetail   = "usp_order_get_invoice_details"
	procOrderCreate          = "usp_order_create"
)

type orderRepository struct {
	db  postgres.ProcCaller
	log *logger.Logger
}

func NewOrderRepository(db postgres.ProcCaller, log *logger.Logger) order.Repository {
	return &orderRepository{db: db, log: log}
}

func (r *orderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	rows, err := r.db.CallProc(ctx, procOrderGetAll)
	if err != nil {
		return nil, classifyDBError(err, "list orders")
	}
	defer rows.Close()

	orders := []*order.Order{}
	if err := sqlx.StructScan(rows, &orders); err != nil {
		return nil, classifyDBError(err, "scan orders")
	}
	return orders, nil
}

func (r *orderRepository) ListInvoiceRows(ctx context.Context) ([]order.FlatRow, error) {
	rows, err := r.db.CallProc(ctx, procOrderInvoiceRowsFlat)
	if err != nil {
		return nil, classifyDBError(err, "list invoice rows")
	}
	defer rows.Close()

	flat := []order.FlatRow{}
	if err := sqlx.StructScan(rows, &flat); err != nil {
		return nil, classifyDBError(err, "scan invoice rows")
	}
	return flat, nil
}

// GetInvoiceDetail reads the three result sets of the detail procedure:
// customer row, order row, line-item rows. Empty or missing result sets map
// to nil rows; the domain layer decides what counts as not found.
func (r *orderRepository) GetInvoiceDetail(ctx context.Context, invoiceNumber int) (*order.CustomerSummary, *order.OrderSummary, []order.LineItemRow, error) {
	rows, err := r.db.CallProc(ctx, procOrderInvoiceDetail, invoiceNumber)
	if err != nil {
		return nil, nil, nil, classifyDBError(err, "get invoice detail")
	}
	defer rows.Close()

	customers := []order.CustomerSummary{}
	if err := sqlx.StructScan(rows, &customers); err != nil {
		return nil, nil, nil, classifyDBError(err, "scan customer detail")
	}

	orders := []order.OrderSummary{}
	if rows.NextResultSet() {
		if err := sqlx.StructScan(rows, &orders); err != nil {
			return nil, nil, nil, classifyDBError(err, "scan order detail")
		}
	}

	items := []order.LineItemRow{}
	if rows.NextResultSet() {
		if err := sqlx.StructScan(rows, &items); err != nil {
			return nil, nil, nil, classifyDBError(err, "scan line items")
		}
	}

	var cust *order.CustomerSummary
	if len(customers) > 0 {
		cust = &customers[0]
	}
	var ord *order.OrderSummary
	if len(orders) > 0 {
		ord = &orders[0]
	}
	return cust, ord, items, nil
}

func (r *orderRepository) Create(ctx context.Context, cmd *order.CreateCommand) (int, error) {
	itemsJSON, err := cmd.ItemsJSON()
	if err != nil {
		return 0, err
	}

	// A nil invoice date becomes SQL NULL; the procedure applies its default
	var invoiceDate sql.NullTime
	if cmd.InvoiceDate != nil {
		invoiceDate = sql.NullTime{Time: *cmd.InvoiceDate, Valid: true}
	}

	rows, err := r.db.CallProc(ctx, procOrderCreate, cmd.CustomerID, itemsJSON, invoiceDate)
	if err != nil {
		return 0, classifyDBError(err, "create order")
	}
	defer rows.Close()

	if !rows.Next() {
		return 0, ierr.NewError("create procedure returned no invoice number").
			WithHint("An internal error occurred").
			Mark(ierr.ErrDatabase)
	}

	var invoiceNumber int
	if err := rows.Scan(&invoiceNumber); err != nil {
		return 0, classifyDBError(err, "scan created invoice number")
	}

	r.log.Infow("order created", "invoice_number", invoiceNumber, "customer_id", cmd.CustomerID)
	return invoiceNumber, nil
}
