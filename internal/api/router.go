package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/orderdesk/orderdesk/internal/api/v1"
	"github.com/orderdesk/orderdesk/internal/config"
	"github.com/orderdesk/orderdesk/internal/logger"
	"github.com/orderdesk/orderdesk/internal/rest/middleware"
)

type Handlers struct {
	Health   *v1.HealthHandler
	Order    *v1.OrderHandler
	Customer *v1.CustomerHandler
	Product  *v1.ProductHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	api := router.Group("/api")

	// Public routes, no auth
	public := api.Group("/public")
	{
		public.GET("/hello", handlers.Health.Hello)
	}

	// Everything else requires the API key
	private := api.Group("", middleware.APIKeyMiddleware(cfg, log))
	registerPrivateRoutes(private, handlers)

	return router
}

func registerPrivateRoutes(router *gin.RouterGroup, handlers Handlers) {
	// Order routes
	order := router.Group("/order")
	{
		order.GET("/viewall", handlers.Order.ViewAllOrders)
		order.GET("/vieworderdetail", handlers.Order.ViewAllOrderDetails)
		order.GET("/details/:invoiceNumber", handlers.Order.GetOrderDetails)
		order.POST("/new", handlers.Order.CreateOrder)
	}

	// Customer routes
	customer := router.Group("/customer")
	{
		customer.GET("/viewall", handlers.Customer.ViewAllCustomers)
	}

	// Product routes
	product := router.Group("/product")
	{
		product.GET("/viewall", handlers.Product.ViewAllProducts)
	}
}
