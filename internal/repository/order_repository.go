package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository reads order history written by the ordering system.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order history reader.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// HasProductOrders reports whether any order item references the product.
func (r *orderRepository) HasProductOrders(ctx context.Context, productID int64) (bool, error) {
	return r.exists(ctx, "product_id", productID)
}

// HasOptionOrders reports whether any order item references the option.
func (r *orderRepository) HasOptionOrders(ctx context.Context, optionID int64) (bool, error) {
	return r.exists(ctx, "option_id", optionID)
}

// HasDetailOrders reports whether any order item references the detail.
func (r *orderRepository) HasDetailOrders(ctx context.Context, detailID int64) (bool, error) {
	return r.exists(ctx, "detail_id", detailID)
}

// column is one of the fixed names above, never user input.
func (r *orderRepository) exists(ctx context.Context, column string, id int64) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM order_items WHERE %s = $1)", column)

	var found bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&found); err != nil {
		r.logger.Error().
			Err(err).
			Str("column", column).
			Int64("id", id).
			Msg("failed to query order history")
		return false, fmt.Errorf("failed to query order history: %w", err)
	}

	return found, nil
}
