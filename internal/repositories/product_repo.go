package repositories

import (
	"context"
	"errors"

	"martstore/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	// FindAllByID fetches every existing product whose id appears in ids,
	// in one round trip. Ids that do not exist are simply absent from the
	// result.
	FindAllByID(ctx context.Context, ids []uuid.UUID) ([]*models.Product, error)
	// FindAllByIDForUpdate is FindAllByID with row locks; it must run
	// inside a transaction opened by the Transactor.
	FindAllByIDForUpdate(ctx context.Context, ids []uuid.UUID) ([]*models.Product, error)
	// UpdateQuantities writes the quantity of every given product in a
	// single statement.
	UpdateQuantities(ctx context.Context, products []*models.Product) error
	List(ctx context.Context, limit, offset int) ([]*models.Product, error)
	ListBelowQuantity(ctx context.Context, threshold int) ([]*models.Product, error)
}

type productRepo struct {
	db Database
}

func NewProductRepo(db Database) ProductRepository {
	return &productRepo{db: db}
}

const productColumns = `id, name, sku, price, quantity, created_at, updated_at`

func scanProduct(row pgx.Row) (*models.Product, error) {
	product := &models.Product{}
	err := row.Scan(&product.ID, &product.Name, &product.SKU, &product.Price, &product.Quantity, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (id, name, sku, price, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := conn(ctx, r.db).Exec(ctx, query, product.ID, product.Name, product.SKU, product.Price, product.Quantity, product.CreatedAt, product.UpdatedAt)
	return err
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	product, err := scanProduct(conn(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepo) FindAllByID(ctx context.Context, ids []uuid.UUID) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1)`
	return r.queryProducts(ctx, query, ids)
}

func (r *productRepo) FindAllByIDForUpdate(ctx context.Context, ids []uuid.UUID) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1) FOR UPDATE`
	return r.queryProducts(ctx, query, ids)
}

func (r *productRepo) UpdateQuantities(ctx context.Context, products []*models.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(products))
	quantities := make([]int, len(products))
	for i, product := range products {
		ids[i] = product.ID
		quantities[i] = product.Quantity
	}

	query := `
		UPDATE products
		SET quantity = u.quantity, updated_at = NOW()
		FROM (SELECT unnest($1::uuid[]) AS id, unnest($2::int[]) AS quantity) u
		WHERE products.id = u.id
	`
	_, err := conn(ctx, r.db).Exec(ctx, query, ids, quantities)
	return err
}

func (r *productRepo) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryProducts(ctx, query, limit, offset)
}

func (r *productRepo) ListBelowQuantity(ctx context.Context, threshold int) ([]*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE quantity <= $1 ORDER BY quantity ASC`
	return r.queryProducts(ctx, query, threshold)
}

func (r *productRepo) queryProducts(ctx context.Context, query string, args ...any) ([]*models.Product, error) {
	rows, err := conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}
