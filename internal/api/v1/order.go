package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk/orderdesk/internal/api/dto"
	ierr "github.com/orderdesk/orderdesk/internal/errors"
	"github.com/orderdesk/orderdesk/internal/logger"
	"github.com/orderdesk/orderdesk/internal/service"
)

type OrderHandler struct {
	service service.OrderService
	log     *logger.Logger
}

func NewOrderHandler(service service.OrderService, log *logger.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// @Summary View all orders
// @Description View all order header rows
// @Tags Orders
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} dto.OrderResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /order/viewall [get]
func (h *OrderHandler) ViewAllOrders(c *gin.Context) {
	resp, err := h.service.GetAllOrders(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary View all orders with details
// @Description View every order as a nested invoice, sorted by invoice number
// @Tags Orders
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} dto.InvoiceResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /order/vieworderdetail [get]
func (h *OrderHandler) ViewAllOrderDetails(c *gin.Context) {
	resp, err := h.service.GetAllInvoiceDetails(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get order details
// @Description Get the nested invoice for one invoice number
// @Tags Orders
// @Produce json
// @Security ApiKeyAuth
// @Param invoiceNumber path int true "Invoice number"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /order/details/{invoiceNumber} [get]
func (h *OrderHandler) GetOrderDetails(c *gin.Context) {
	invoiceNumber, err := strconv.Atoi(c.Param("invoiceNumber"))
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("invoiceNumber must be a positive integer").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetInvoiceDetail(c.Request.Context(), invoiceNumber)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Create an order
// @Description Validate an order-creation request and dispatch it to the create procedure
// @Tags Orders
// @Accept json
// @Produce plain
// @Security ApiKeyAuth
// @Param order body dto.CreateOrderRequest true "Order"
// @Success 200 {string} string "New Invoice Added: 42"
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /order/new [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.String(http.StatusOK, resp.Confirmation())
}
