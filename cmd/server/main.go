package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk/orderdesk/internal/api"
	v1 "github.com/orderdesk/orderdesk/internal/api/v1"
	"github.com/orderdesk/orderdesk/internal/cache"
	"github.com/orderdesk/orderdesk/internal/config"
	"github.com/orderdesk/orderdesk/internal/logger"
	"github.com/orderdesk/orderdesk/internal/postgres"
	"github.com/orderdesk/orderdesk/internal/repository"
	"github.com/orderdesk/orderdesk/internal/service"
	"github.com/orderdesk/orderdesk/internal/validator"
	"go.uber.org/fx"
)

// @title OrderDesk API
// @version 1.0
// @description Order, customer and product API backed by stored procedures
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	fx.New(
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.NewInMemoryCache,

			// Postgres
			postgres.NewDB,
			provideProcCaller,

			// Repositories
			repository.NewOrderRepository,
			repository.NewCustomerRepository,
			repository.NewProductRepository,

			// Services
			service.NewServiceParams,
			service.NewOrderService,
			service.NewCustomerService,
			service.NewProductService,

			// HTTP
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	).Run()
}

func provideProcCaller(db *postgres.DB) postgres.ProcCaller {
	return db
}

func provideHandlers(
	orderService service.OrderService,
	customerService service.CustomerService,
	productService service.ProductService,
	log *logger.Logger,
) api.Handlers {
	return api.Handlers{
		Health:   v1.NewHealthHandler(log),
		Order:    v1.NewOrderHandler(orderService, log),
		Customer: v1.NewCustomerHandler(customerService, log),
		Product:  v1.NewProductHandler(productService, log),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, cfg, log)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	db *postgres.DB,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Health(ctx); err != nil {
				return err
			}

			log.Infof("API running on %s", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			db.Close()
			return nil
		},
	})
}
