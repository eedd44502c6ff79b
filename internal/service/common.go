package service

import (
	"github.com/orderdesk/orderdesk/internal/cache"
	"github.com/orderdesk/orderdesk/internal/config"
	"github.com/orderdesk/orderdesk/internal/domain/customer"
	"github.com/orderdesk/orderdesk/internal/domain/order"
	"github.com/orderdesk/orderdesk/internal/domain/product"
	"github.com/orderdesk/orderdesk/internal/logger"
)

// ServiceParams bundles the dependencies shared by all services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Cache  cache.Cache

	OrderRepo    order.Repository
	CustomerRepo customer.Repository
	ProductRepo  product.Repository
}

func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	cache cache.Cache,
	orderRepo order.Repository,
	customerRepo customer.Repository,
	productRepo product.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:       logger,
		Config:       config,
		Cache:        cache,
		OrderRepo:    orderRepo,
		CustomerRepo: customerRepo,
		ProductRepo:  productRepo,
	}
}
