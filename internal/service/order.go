package service

import (
	"context"

	"github.com/orderdesk/orderdesk/internal/api/dto"
	"github.com/orderdesk/orderdesk/internal/domain/order"
	ierr "github.com/orderdesk/orderdesk/internal/errors"
	"github.com/samber/lo"
)

type OrderService interface {
	// GetAllOrders returns the raw order header rows
	GetAllOrders(ctx context.Context) ([]*dto.OrderResponse, error)

	// GetAllInvoiceDetails returns every order as a nested invoice, sorted
	// ascending by invoice number
	GetAllInvoiceDetails(ctx context.Context) ([]*dto.InvoiceResponse, error)

	// GetInvoiceDetail returns the nested invoice for one invoice number
	GetInvoiceDetail(ctx context.Context, invoiceNumber int) (*dto.InvoiceResponse, error)

	// CreateOrder validates, normalizes and dispatches an order-creation
	// request
	CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
}

type orderService struct {
	ServiceParams
}

func NewOrderService(params ServiceParams) OrderService {
	return &orderService{ServiceParams: params}
}

func (s *orderService) GetAllOrders(ctx context.Context) ([]*dto.OrderResponse, error) {
	orders, err := s.OrderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(orders, func(o *order.Order, _ int) *dto.OrderResponse {
		return &dto.OrderResponse{Order: o}
	}), nil
}

func (s *orderService) GetAllInvoiceDetails(ctx context.Context) ([]*dto.InvoiceResponse, error) {
	rows, err := s.OrderRepo.ListInvoiceRows(ctx)
	if err != nil {
		return nil, err
	}

	invoices := order.AggregateFlatRows(rows)
	return lo.Map(invoices, func(inv *order.Invoice, _ int) *dto.InvoiceResponse {
		return &dto.InvoiceResponse{Invoice: inv}
	}), nil
}

func (s *orderService) GetInvoiceDetail(ctx context.Context, invoiceNumber int) (*dto.InvoiceResponse, error) {
	if invoiceNumber <= 0 {
		return nil, ierr.NewError("invalid invoice number").
			WithHint("invoiceNumber must be a positive integer").
			Mark(ierr.ErrValidation)
	}

	cust, ord, items, err := s.OrderRepo.GetInvoiceDetail(ctx, invoiceNumber)
	if err != nil {
		return nil, err
	}

	invoice, err := order.BuildDetail(cust, ord, items)
	if err != nil {
		return nil, err
	}

	return &dto.InvoiceResponse{Invoice: invoice}, nil
}

func (s *orderService) CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	cmd, err := req.ToCreateCommand()
	if err != nil {
		return nil, err
	}

	invoiceNumber, err := s.OrderRepo.Create(ctx, cmd)
	if err != nil {
		return nil, err
	}

	return &dto.CreateOrderResponse{InvoiceNumber: invoiceNumber}, nil
}
