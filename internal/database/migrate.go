package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/rs/zerolog"
)

//go:embed schema.sql
var schema string

// Schema returns the DDL applied by Migrate.
func Schema() string {
	return schema
}

// Migrate creates any missing tables and indexes. It is safe to run repeatedly.
func Migrate(ctx context.Context, db Querier, logger zerolog.Logger) error {
	logger.Info().Msg("applying database schema")

	if _, err := db.Exec(ctx, schema); err != nil {
		logger.Error().Err(err).Msg("failed to apply database schema")
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}
