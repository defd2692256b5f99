package services

import (
	"context"
	"time"

	"martstore/internal/caching"
	"martstore/internal/models"
	"martstore/internal/repositories"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const productCacheTTL = 5 * time.Minute

type ProductService interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context, limit, offset int) ([]*models.Product, error)
}

type productService struct {
	productRepo  repositories.ProductRepository
	cacheService caching.CacheService
}

func NewProductService(productRepo repositories.ProductRepository, cacheService caching.CacheService) ProductService {
	return &productService{
		productRepo:  productRepo,
		cacheService: cacheService,
	}
}

func (s *productService) Create(ctx context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	return s.productRepo.Create(ctx, product)
}

// GetByID reads through the catalog cache. Cache failures degrade to a
// repository read.
func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	cached, err := s.cacheService.GetProduct(ctx, id)
	if err != nil {
		logrus.WithError(err).Warnf("product cache read failed for %s", id)
	} else if cached != nil {
		return cached, nil
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil || product == nil {
		return product, err
	}
	if cacheErr := s.cacheService.SetProduct(ctx, product, productCacheTTL); cacheErr != nil {
		logrus.WithError(cacheErr).Warnf("product cache write failed for %s", id)
	}
	return product, nil
}

func (s *productService) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	return s.productRepo.List(ctx, limit, offset)
}
