package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/orderdesk/orderdesk/internal/domain/product"
	"github.com/orderdesk/orderdesk/internal/logger"
	"github.com/orderdesk/orderdesk/internal/postgres"
)

const procProductGetAll = "usp_product_get_all"

type productRepository struct {
	db  postgres.ProcCaller
	log *logger.Logger
}

func NewProductRepository(db postgres.ProcCaller, log *logger.Logger) product.Repository {
	return &productRepository{db: db, log: log}
}

func (r *productRepository) ListAll(ctx context.Context) ([]*product.Product, error) {
	rows, err := r.db.CallProc(ctx, procProductGetAll)
	if err != nil {
		return nil, classifyDBError(err, "list products")
	}
	defer rows.Close()

	products := []*product.Product{}
	if err := sqlx.StructScan(rows, &products); err != nil {
		return nil, classifyDBError(err, "scan products")
	}
	return products, nil
}
