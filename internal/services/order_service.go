package services

import (
	"context"
	"time"

	"martstore/internal/caching"
	"martstore/internal/common"
	"martstore/internal/models"
	"martstore/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var validate = validator.New()

// OrderLineRequest is one requested (product, quantity) pair.
type OrderLineRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	CustomerID uuid.UUID          `json:"customer_id" validate:"required"`
	Lines      []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

type OrderService interface {
	Create(ctx context.Context, req *CreateOrderRequest) (*models.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*models.Order, error)
}

type orderService struct {
	orderRepo    repositories.OrderRepository
	productRepo  repositories.ProductRepository
	customerRepo repositories.CustomerRepository
	transactor   repositories.Transactor
	cacheService caching.CacheService
}

func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository,
	customerRepo repositories.CustomerRepository, transactor repositories.Transactor,
	cacheService caching.CacheService) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		transactor:   transactor,
		cacheService: cacheService,
	}
}

// Create validates the requested lines against current stock and persists
// the order with its items. Customer lookup, the locked batch product
// fetch, order insert and stock update all run in one transaction, so a
// failed request leaves no partial state and concurrent requests cannot
// oversell the same product.
func (s *orderService) Create(ctx context.Context, req *CreateOrderRequest) (*models.Order, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	var order *models.Order
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return common.ErrCustomerNotFound
		}

		ids := make([]uuid.UUID, len(req.Lines))
		for i, line := range req.Lines {
			ids[i] = line.ProductID
		}

		products, err := s.productRepo.FindAllByIDForUpdate(ctx, ids)
		if err != nil {
			return err
		}
		productsByID := make(map[uuid.UUID]*models.Product, len(products))
		for _, product := range products {
			productsByID[product.ID] = product
		}

		orderID := uuid.New()
		items := make([]models.OrderItem, 0, len(req.Lines))
		for _, line := range req.Lines {
			product, ok := productsByID[line.ProductID]
			if !ok {
				return common.ErrProductNotFound
			}
			if line.Quantity > product.Quantity {
				return common.ErrInsufficientStock
			}
			// Decrement the fetched snapshot so repeated ids within one
			// request are checked cumulatively against the same stock.
			product.Quantity -= line.Quantity
			items = append(items, models.OrderItem{
				ID:        uuid.New(),
				OrderID:   orderID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
			})
		}

		order = &models.Order{
			ID:         orderID,
			CustomerID: customer.ID,
			Items:      items,
			CreatedAt:  time.Now(),
		}
		if err := s.orderRepo.Create(ctx, order); err != nil {
			return err
		}
		return s.productRepo.UpdateQuantities(ctx, products)
	})
	if err != nil {
		return nil, err
	}

	// Evict the touched products from the catalog cache. Eviction is
	// best-effort; entries also expire by TTL.
	for _, item := range order.Items {
		if cacheErr := s.cacheService.DeleteProduct(ctx, item.ProductID); cacheErr != nil {
			logrus.WithError(cacheErr).Warnf("failed to evict product %s from cache", item.ProductID)
		}
	}

	return order, nil
}

func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *orderService) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*models.Order, error) {
	return s.orderRepo.ListByCustomer(ctx, customerID, limit, offset)
}
