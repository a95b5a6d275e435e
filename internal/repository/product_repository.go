package repository

import (
	"context"
	"errors"
	"fmt"

	"frankit/internal/database"
	"frankit/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const productColumns = "id, name, description, price, shipping_fee, is_active, created_at, updated_at"

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(logger zerolog.Logger) ProductRepository {
	return &productRepository{
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

func scanProduct(row scanner) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ShippingFee, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new product.
func (r *productRepository) Create(ctx context.Context, q database.Querier, p *model.Product) error {
	query := `
		INSERT INTO products (name, description, price, shipping_fee, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, p.Name, p.Description, p.Price, p.ShippingFee, p.IsActive).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("name", p.Name).Msg("failed to create product")
		return fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug().Int64("product_id", p.ID).Msg("product created successfully")

	return nil
}

// Update writes the product's mutable columns.
func (r *productRepository) Update(ctx context.Context, q database.Querier, p *model.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, shipping_fee = $5, is_active = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, p.ID, p.Name, p.Description, p.Price, p.ShippingFee, p.IsActive).Scan(&p.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", p.ID).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

// Delete removes a product by its ID.
func (r *productRepository) Delete(ctx context.Context, q database.Querier, id int64) error {
	if _, err := q.Exec(ctx, "DELETE FROM products WHERE id = $1", id); err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, q database.Querier, id int64) (*model.Product, error) {
	return r.get(ctx, q, "SELECT "+productColumns+" FROM products WHERE id = $1", id)
}

// GetByIDForUpdate retrieves a product and locks its row.
func (r *productRepository) GetByIDForUpdate(ctx context.Context, q database.Querier, id int64) (*model.Product, error) {
	return r.get(ctx, q, "SELECT "+productColumns+" FROM products WHERE id = $1 FOR UPDATE", id)
}

func (r *productRepository) get(ctx context.Context, q database.Querier, query string, id int64) (*model.Product, error) {
	p, err := scanProduct(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return p, nil
}

// GetAll retrieves all products with pagination support.
func (r *productRepository) GetAll(ctx context.Context, q database.Querier, limit, offset int) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// Count returns the total number of products.
func (r *productRepository) Count(ctx context.Context, q database.Querier) (int64, error) {
	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&total); err != nil {
		r.logger.Error().Err(err).Msg("failed to count products")
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return total, nil
}
