package service

import (
	"context"

	"github.com/orderdesk/orderdesk/internal/api/dto"
	"github.com/orderdesk/orderdesk/internal/cache"
	"github.com/orderdesk/orderdesk/internal/domain/customer"
	"github.com/samber/lo"
)

type CustomerService interface {
	// GetAllCustomers returns all customer rows
	GetAllCustomers(ctx context.Context) ([]*dto.CustomerResponse, error)
}

type customerService struct {
	ServiceParams
}

func NewCustomerService(params ServiceParams) CustomerService {
	return &customerService{ServiceParams: params}
}

func (s *customerService) GetAllCustomers(ctx context.Context) ([]*dto.CustomerResponse, error) {
	if cached, ok := s.Cache.Get(ctx, cache.KeyAllCustomers); ok {
		if customers, ok := cached.([]*dto.CustomerResponse); ok {
			return customers, nil
		}
	}

	rows, err := s.CustomerRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	customers := lo.Map(rows, func(c *customer.Customer, _ int) *dto.CustomerResponse {
		return &dto.CustomerResponse{Customer: c}
	})

	s.Cache.Set(ctx, cache.KeyAllCustomers, customers, 0)
	return customers, nil
}
