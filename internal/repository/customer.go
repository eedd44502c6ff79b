package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/orderdesk/orderdesk/internal/domain/customer"
	"github.com/orderdesk/orderdesk/internal/logger"
	"github.com/orderdesk/orderdesk/internal/postgres"
)

const procCustomerGetAll = "usp_customer_get_all"

type customerRepository struct {
	db  postgres.ProcCaller
	log *logger.Logger
}

func NewCustomerRepository(db postgres.ProcCaller, log *logger.Logger) customer.Repository {
	return &customerRepository{db: db, log: log}
}

func (r *customerRepository) ListAll(ctx context.Context) ([]*customer.Customer, error) {
	rows, err := r.db.CallProc(ctx, procCustomerGetAll)
	if err != nil {
		return nil, classifyDBError(err, "list customers")
	}
	defer rows.Close()

	customers := []*customer.Customer{}
	if err := sqlx.StructScan(rows, &customers); err != nil {
		return nil, classifyDBError(err, "scan customers")
	}
	return customers, nil
}
