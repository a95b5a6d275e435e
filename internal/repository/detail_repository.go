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

const detailColumns = "id, option_id, detail_name, detail_price, is_active, created_at, updated_at"

// detailRepository implements the OptionDetailRepository interface using PostgreSQL.
type detailRepository struct {
	logger zerolog.Logger
}

// NewOptionDetailRepository creates a new PostgreSQL-backed option detail repository.
func NewOptionDetailRepository(logger zerolog.Logger) OptionDetailRepository {
	return &detailRepository{
		logger: logger.With().Str("repository", "option_detail").Logger(),
	}
}

func scanDetail(row scanner) (*model.OptionDetail, error) {
	var d model.OptionDetail
	err := row.Scan(&d.ID, &d.OptionID, &d.DetailName, &d.DetailPrice, &d.IsActive, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *detailRepository) Create(ctx context.Context, q database.Querier, d *model.OptionDetail) error {
	query := `
		INSERT INTO option_details (option_id, detail_name, detail_price, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, d.OptionID, d.DetailName, d.DetailPrice, d.IsActive).
		Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Int64("option_id", d.OptionID).Msg("failed to create option detail")
		return fmt.Errorf("failed to create option detail: %w", err)
	}

	return nil
}

func (r *detailRepository) Update(ctx context.Context, q database.Querier, d *model.OptionDetail) error {
	query := `
		UPDATE option_details
		SET detail_name = $2, detail_price = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, d.ID, d.DetailName, d.DetailPrice, d.IsActive).Scan(&d.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Int64("detail_id", d.ID).Msg("failed to update option detail")
		return fmt.Errorf("failed to update option detail: %w", err)
	}

	return nil
}

func (r *detailRepository) Delete(ctx context.Context, q database.Querier, id int64) error {
	if _, err := q.Exec(ctx, "DELETE FROM option_details WHERE id = $1", id); err != nil {
		r.logger.Error().Err(err).Int64("detail_id", id).Msg("failed to delete option detail")
		return fmt.Errorf("failed to delete option detail: %w", err)
	}
	return nil
}

func (r *detailRepository) GetByID(ctx context.Context, q database.Querier, id int64) (*model.OptionDetail, error) {
	d, err := scanDetail(q.QueryRow(ctx, "SELECT "+detailColumns+" FROM option_details WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("detail_id", id).Msg("option detail not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("detail_id", id).Msg("failed to query option detail")
		return nil, fmt.Errorf("failed to query option detail: %w", err)
	}

	return d, nil
}

func (r *detailRepository) ListByOption(ctx context.Context, q database.Querier, optionID int64, activeOnly bool) ([]*model.OptionDetail, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM option_details
		WHERE option_id = $1 AND ($2 = FALSE OR is_active)
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, optionID, activeOnly)
	if err != nil {
		r.logger.Error().Err(err).Int64("option_id", optionID).Msg("failed to query option details")
		return nil, fmt.Errorf("failed to query option details: %w", err)
	}
	defer rows.Close()

	details := []*model.OptionDetail{}
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan option detail row")
			return nil, fmt.Errorf("failed to scan option detail: %w", err)
		}
		details = append(details, d)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating option detail rows")
		return nil, fmt.Errorf("error iterating option details: %w", err)
	}

	return details, nil
}

func (r *detailRepository) SaveActiveStates(ctx context.Context, q database.Querier, details []*model.OptionDetail) error {
	if len(details) == 0 {
		return nil
	}

	query := `
		UPDATE option_details
		SET is_active = $2, updated_at = NOW()
		WHERE id = $1
	`

	batch := &pgx.Batch{}
	for _, d := range details {
		batch.Queue(query, d.ID, d.IsActive)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for _, d := range details {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Int64("detail_id", d.ID).
				Msg("failed to save option detail state")
			return fmt.Errorf("failed to save option detail state: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(details)).
		Msg("option detail states saved")

	return nil
}
