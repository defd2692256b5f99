package memory

import (
	"context"
	"sort"
	"sync"

	"martstore/internal/models"
	"martstore/internal/repositories"

	"github.com/google/uuid"
)

type productRepo struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.Product
}

func NewProductRepo() repositories.ProductRepository {
	return &productRepo{items: make(map[uuid.UUID]models.Product)}
}

func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[product.ID] = *product
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (r *productRepo) FindAllByID(ctx context.Context, ids []uuid.UUID) ([]*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[uuid.UUID]bool, len(ids))
	var products []*models.Product
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if product, ok := r.items[id]; ok {
			p := product
			products = append(products, &p)
		}
	}
	return products, nil
}

// FindAllByIDForUpdate returns copies like FindAllByID; serialization of
// concurrent order flows comes from the memory Transactor's mutex.
func (r *productRepo) FindAllByIDForUpdate(ctx context.Context, ids []uuid.UUID) ([]*models.Product, error) {
	return r.FindAllByID(ctx, ids)
}

func (r *productRepo) UpdateQuantities(ctx context.Context, products []*models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, product := range products {
		stored, ok := r.items[product.ID]
		if !ok {
			continue
		}
		stored.Quantity = product.Quantity
		r.items[product.ID] = stored
	}
	return nil
}

func (r *productRepo) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*models.Product, 0, len(r.items))
	for _, product := range r.items {
		p := product
		products = append(products, &p)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return paginate(products, limit, offset), nil
}

func (r *productRepo) ListBelowQuantity(ctx context.Context, threshold int) ([]*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var products []*models.Product
	for _, product := range r.items {
		if product.Quantity <= threshold {
			p := product
			products = append(products, &p)
		}
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].Quantity < products[j].Quantity
	})
	return products, nil
}
