package memory

import (
	"context"
	"sort"
	"sync"

	"martstore/internal/models"
	"martstore/internal/repositories"

	"github.com/google/uuid"
)

type orderRepo struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.Order
}

func NewOrderRepo() repositories.OrderRepository {
	return &orderRepo{items: make(map[uuid.UUID]models.Order)}
}

func (r *orderRepo) Create(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *order
	stored.Items = append([]models.OrderItem(nil), order.Items...)
	r.items[order.ID] = stored
	return nil
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	order.Items = append([]models.OrderItem(nil), order.Items...)
	return &order, nil
}

func (r *orderRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []*models.Order
	for _, order := range r.items {
		if order.CustomerID != customerID {
			continue
		}
		o := order
		o.Items = append([]models.OrderItem(nil), order.Items...)
		orders = append(orders, &o)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return paginate(orders, limit, offset), nil
}
