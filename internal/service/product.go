package service

import (
	"context"

	"github.com/orderdesk/orderdesk/internal/api/dto"
	"github.com/orderdesk/orderdesk/internal/cache"
	"github.com/orderdesk/orderdesk/internal/domain/product"
	"github.com/samber/lo"
)

type ProductService interface {
	// GetAllProducts returns all product rows
	GetAllProducts(ctx context.Context) ([]*dto.ProductResponse, error)
}

type productService struct {
	ServiceParams
}

func NewProductService(params ServiceParams) ProductService {
	return &productService{ServiceParams: params}
}

func (s *productService) GetAllProducts(ctx context.Context) ([]*dto.ProductResponse, error) {
	if cached, ok := s.Cache.Get(ctx, cache.KeyAllProducts); ok {
		if products, ok := cached.([]*dto.ProductResponse); ok {
			return products, nil
		}
	}

	rows, err := s.ProductRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	products := lo.Map(rows, func(p *product.Product, _ int) *dto.ProductResponse {
		return &dto.ProductResponse{Product: p}
	})

	s.Cache.Set(ctx, cache.KeyAllProducts, products, 0)
	return products, nil
}
