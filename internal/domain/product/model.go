package product

import "github.com/shopspring/decimal"

// Product represents one product row as returned by usp_product_get_all
type Product struct {
	ProductID   string          `db:"productId" json:"productId"`
	ProductName string          `db:"productName" json:"productName"`
	ProductCost decimal.Decimal `db:"productCost" json:"productCost"`
}
