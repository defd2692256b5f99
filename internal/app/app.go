// Package app wires repositories, services and background jobs together
// with plain constructor calls; there is no runtime container.
package app

import (
	"context"

	"martstore/internal/caching"
	"martstore/internal/config"
	"martstore/internal/jobs"
	"martstore/internal/jobs/background"
	"martstore/internal/repositories"
	"martstore/internal/services"
	"martstore/pkg/database"

	"github.com/jackc/pgx/v5/pgxpool"
)

// App holds the assembled application. The services are the surface a
// transport layer (out of scope here) would call into.
type App struct {
	Customers services.CustomerService
	Products  services.ProductService
	Orders    services.OrderService
	Scheduler *background.JobScheduler

	pool *pgxpool.Pool
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	cacheService := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	customerRepo := repositories.NewCustomerRepo(pool)
	productRepo := repositories.NewProductRepo(pool)
	orderRepo := repositories.NewOrderRepo(pool)
	transactor := repositories.NewTransactor(pool)

	lowStockSvc := jobs.NewLowStockAlertService(productRepo, cfg.LowStockThreshold)
	scheduler, err := background.NewJobScheduler(lowStockSvc, cfg.LowStockInterval)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return &App{
		Customers: services.NewCustomerService(customerRepo),
		Products:  services.NewProductService(productRepo, cacheService),
		Orders:    services.NewOrderService(orderRepo, productRepo, customerRepo, transactor, cacheService),
		Scheduler: scheduler,
		pool:      pool,
	}, nil
}

func (a *App) Close() {
	a.pool.Close()
}
