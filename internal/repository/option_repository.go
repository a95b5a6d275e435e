package repository

import (
	"context"
	"errors"
	"fmt"

	"frankit/internal/database"
	"frankit/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const optionColumns = "id, product_id, option_name, option_type, option_price, is_active, created_at, updated_at"

// optionRepository implements the ProductOptionRepository interface using PostgreSQL.
type optionRepository struct {
	logger zerolog.Logger
}

// NewProductOptionRepository creates a new PostgreSQL-backed option repository.
func NewProductOptionRepository(logger zerolog.Logger) ProductOptionRepository {
	return &optionRepository{
		logger: logger.With().Str("repository", "product_option").Logger(),
	}
}

func scanOption(row scanner) (*model.ProductOption, error) {
	var (
		o          model.ProductOption
		optionType string
		price      decimal.NullDecimal
	)
	err := row.Scan(&o.ID, &o.ProductID, &o.OptionName, &optionType, &price, &o.IsActive, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.OptionType = model.OptionType(optionType)
	if price.Valid {
		o.OptionPrice = &price.Decimal
	}
	return &o, nil
}

func (r *optionRepository) Create(ctx context.Context, q database.Querier, o *model.ProductOption) error {
	query := `
		INSERT INTO product_options (product_id, option_name, option_type, option_price, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, o.ProductID, o.OptionName, string(o.OptionType), o.OptionPrice, o.IsActive).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", o.ProductID).Msg("failed to create option")
		return fmt.Errorf("failed to create option: %w", err)
	}

	r.logger.Debug().
		Int64("product_id", o.ProductID).
		Int64("option_id", o.ID).
		Msg("option created successfully")

	return nil
}

func (r *optionRepository) Update(ctx context.Context, q database.Querier, o *model.ProductOption) error {
	query := `
		UPDATE product_options
		SET option_name = $2, option_type = $3, option_price = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, o.ID, o.OptionName, string(o.OptionType), o.OptionPrice, o.IsActive).Scan(&o.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Int64("option_id", o.ID).Msg("failed to update option")
		return fmt.Errorf("failed to update option: %w", err)
	}

	return nil
}

func (r *optionRepository) Delete(ctx context.Context, q database.Querier, id int64) error {
	if _, err := q.Exec(ctx, "DELETE FROM product_options WHERE id = $1", id); err != nil {
		r.logger.Error().Err(err).Int64("option_id", id).Msg("failed to delete option")
		return fmt.Errorf("failed to delete option: %w", err)
	}
	return nil
}

func (r *optionRepository) GetByID(ctx context.Context, q database.Querier, id int64) (*model.ProductOption, error) {
	return r.get(ctx, q, "SELECT "+optionColumns+" FROM product_options WHERE id = $1", id)
}

// GetByIDForUpdate retrieves an option and locks its row.
func (r *optionRepository) GetByIDForUpdate(ctx context.Context, q database.Querier, id int64) (*model.ProductOption, error) {
	return r.get(ctx, q, "SELECT "+optionColumns+" FROM product_options WHERE id = $1 FOR UPDATE", id)
}

func (r *optionRepository) get(ctx context.Context, q database.Querier, query string, id int64) (*model.ProductOption, error) {
	o, err := scanOption(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("option_id", id).Msg("option not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("option_id", id).Msg("failed to query option")
		return nil, fmt.Errorf("failed to query option: %w", err)
	}

	return o, nil
}

func (r *optionRepository) ListByProduct(ctx context.Context, q database.Querier, productID int64, activeOnly bool) ([]*model.ProductOption, error) {
	query := `
		SELECT ` + optionColumns + `
		FROM product_options
		WHERE product_id = $1 AND ($2 = FALSE OR is_active)
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, productID, activeOnly)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", productID).Msg("failed to query options")
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	options := []*model.ProductOption{}
	for rows.Next() {
		o, err := scanOption(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan option row")
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating option rows")
		return nil, fmt.Errorf("error iterating options: %w", err)
	}

	return options, nil
}

func (r *optionRepository) CountActiveByProduct(ctx context.Context, q database.Querier, productID int64) (int, error) {
	var count int
	err := q.QueryRow(ctx,
		"SELECT COUNT(*) FROM product_options WHERE product_id = $1 AND is_active",
		productID,
	).Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", productID).Msg("failed to count active options")
		return 0, fmt.Errorf("failed to count active options: %w", err)
	}
	return count, nil
}
