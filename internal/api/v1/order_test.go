package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk/orderdesk/internal/api/dto"
	"github.com/orderdesk/orderdesk/internal/domain/order"
	ierr "github.com/orderdesk/orderdesk/internal/errors"
	"github.com/orderdesk/orderdesk/internal/logger"
	"github.com/orderdesk/orderdesk/internal/rest/middleware"
	"github.com/stretchr/testify/assert"
)

// stubOrderService returns canned responses so handler tests can focus on
// status codes and body shapes.
type stubOrderService struct {
	invoice *dto.InvoiceResponse
	created *dto.CreateOrderResponse
	err     error
}

func (s *stubOrderService) GetAllOrders(context.Context) ([]*dto.OrderResponse, error) {
	return nil, s.err
}

func (s *stubOrderService) GetAllInvoiceDetails(context.Context) ([]*dto.InvoiceResponse, error) {
	return nil, s.err
}

func (s *stubOrderService) GetInvoiceDetail(context.Context, int) (*dto.InvoiceResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.invoice, nil
}

func (s *stubOrderService) CreateOrder(context.Context, *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func setupOrderRouter(t *testing.T, svc *stubOrderService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewOrderHandler(svc, logger.L)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/order/details/:invoiceNumber", handler.GetOrderDetails)
	router.POST("/order/new", handler.CreateOrder)
	return router
}

func TestGetOrderDetailsHandler(t *testing.T) {
	t.Run("returns_invoice", func(t *testing.T) {
		router := setupOrderRouter(t, &stubOrderService{
			invoice: &dto.InvoiceResponse{Invoice: &order.Invoice{
				OrderDetail: order.OrderSummary{InvoiceNumber: 5},
				LineItems:   []order.LineItem{},
			}},
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/order/details/5", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"invoiceNumber":5`)
		assert.Contains(t, w.Body.String(), `"lineItems":[]`)
	})

	t.Run("not_found", func(t *testing.T) {
		router := setupOrderRouter(t, &stubOrderService{
			err: ierr.NewError("order not found").
				WithHint("Order not found").
				Mark(ierr.ErrNotFound),
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/order/details/42", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Order not found")
	})

	t.Run("non_numeric_invoice_number", func(t *testing.T) {
		router := setupOrderRouter(t, &stubOrderService{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/order/details/abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateOrderHandler(t *testing.T) {
	t.Run("plain_text_confirmation", func(t *testing.T) {
		router := setupOrderRouter(t, &stubOrderService{
			created: &dto.CreateOrderResponse{InvoiceNumber: 12},
		})

		body := strings.NewReader(`{
			"customerId": "550e8400-e29b-41d4-a716-446655440000",
			"products": [{"productId": "7f1d8f6a-3c2b-41d4-a716-446655440abc", "quantity": 2}]
		}`)
		req := httptest.NewRequest(http.MethodPost, "/order/new", body)
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "New Invoice Added: 12", w.Body.String())
	})

	t.Run("malformed_body", func(t *testing.T) {
		router := setupOrderRouter(t, &stubOrderService{})

		req := httptest.NewRequest(http.MethodPost, "/order/new", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reference_error_maps_to_bad_request", func(t *testing.T) {
		router := setupOrderRouter(t, &stubOrderService{
			err: ierr.NewError("fk violation").
				WithHint("A referenced customer or product does not exist").
				Mark(ierr.ErrInvalidOperation),
		})

		body := strings.NewReader(`{
			"customerId": "550e8400-e29b-41d4-a716-446655440000",
			"products": [{"productId": "7f1d8f6a-3c2b-41d4-a716-446655440abc", "quantity": 2}]
		}`)
		req := httptest.NewRequest(http.MethodPost, "/order/new", body)
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "does not exist")
	})
}
