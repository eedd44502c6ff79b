package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk/orderdesk/internal/logger"
	"github.com/orderdesk/orderdesk/internal/service"
)

type ProductHandler struct {
	service service.ProductService
	log     *logger.Logger
}

func NewProductHandler(service service.ProductService, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// @Summary View all products
// @Tags Products
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} dto.ProductResponse
// @Router /product/viewall [get]
func (h *ProductHandler) ViewAllProducts(c *gin.Context) {
	resp, err := h.service.GetAllProducts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
