package jobs

import (
	"context"

	"martstore/internal/repositories"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultLowStockThreshold = 10

type LowStockAlertService struct {
	productRepo repositories.ProductRepository
	threshold   int
}

type LowStockAlert struct {
	ProductID    uuid.UUID
	ProductName  string
	SKU          string
	CurrentStock int
	Threshold    int
}

func NewLowStockAlertService(productRepo repositories.ProductRepository, threshold int) *LowStockAlertService {
	if threshold <= 0 {
		threshold = defaultLowStockThreshold
	}
	return &LowStockAlertService{
		productRepo: productRepo,
		threshold:   threshold,
	}
}

func (a *LowStockAlertService) CheckLowStock(ctx context.Context) ([]LowStockAlert, error) {
	products, err := a.productRepo.ListBelowQuantity(ctx, a.threshold)
	if err != nil {
		logrus.WithError(err).Error("failed to list low-stock products")
		return nil, err
	}

	alerts := make([]LowStockAlert, 0, len(products))
	for _, product := range products {
		alerts = append(alerts, LowStockAlert{
			ProductID:    product.ID,
			ProductName:  product.Name,
			SKU:          product.SKU,
			CurrentStock: product.Quantity,
			Threshold:    a.threshold,
		})
	}
	return alerts, nil
}

func (a *LowStockAlertService) LogLowStockAlerts(alerts []LowStockAlert) {
	if len(alerts) == 0 {
		logrus.Debug("no low stock alerts to log")
		return
	}

	for _, alert := range alerts {
		logrus.WithFields(logrus.Fields{
			"product_id": alert.ProductID,
			"sku":        alert.SKU,
			"stock":      alert.CurrentStock,
			"threshold":  alert.Threshold,
		}).Warnf("product %q is running low on stock", alert.ProductName)
	}
}

// ScheduledLowStockCheck is the entry point the scheduler runs.
func (a *LowStockAlertService) ScheduledLowStockCheck(ctx context.Context) error {
	alerts, err := a.CheckLowStock(ctx)
	if err != nil {
		return err
	}
	a.LogLowStockAlerts(alerts)
	return nil
}
