// Package memory holds in-memory implementations of the repository
// contracts for local development and tests.
package memory

import (
	"context"
	"sync"

	"martstore/internal/common"
	"martstore/internal/models"
	"martstore/internal/repositories"

	"github.com/google/uuid"
)

type customerRepo struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.Customer
}

func NewCustomerRepo() repositories.CustomerRepository {
	return &customerRepo{items: make(map[uuid.UUID]models.Customer)}
}

func (r *customerRepo) Create(ctx context.Context, customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.Email == customer.Email {
			return common.ErrDuplicateEmail
		}
	}
	r.items[customer.ID] = *customer
	return nil
}

func (r *customerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &customer, nil
}

func (r *customerRepo) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, customer := range r.items {
		if customer.Email == email {
			c := customer
			return &c, nil
		}
	}
	return nil, nil
}

func (r *customerRepo) List(ctx context.Context, limit, offset int) ([]*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]*models.Customer, 0, len(r.items))
	for _, customer := range r.items {
		c := customer
		customers = append(customers, &c)
	}
	return paginate(customers, limit, offset), nil
}

func paginate[T any](items []*T, limit, offset int) []*T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
