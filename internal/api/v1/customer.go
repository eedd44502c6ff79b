package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk/orderdesk/internal/logger"
	"github.com/orderdesk/orderdesk/internal/service"
)

type CustomerHandler struct {
	service service.CustomerService
	log     *logger.Logger
}

func NewCustomerHandler(service service.CustomerService, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log,
	}
}

// @Summary View all customers
// @Tags Customers
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} dto.CustomerResponse
// @Router /customer/viewall [get]
func (h *CustomerHandler) ViewAllCustomers(c *gin.Context) {
	resp, err := h.service.GetAllCustomers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
