package catalog

import (
	"context"
	"errors"
	"fmt"

	"frankit/internal/model"

	"github.com/rs/zerolog"
)

// Importer creates products from catalog seed files.
type Importer struct {
	loader   Loader
	products ProductCreator
	logger   zerolog.Logger
}

// NewImporter creates a new importer.
func NewImporter(loader Loader, products ProductCreator, logger zerolog.Logger) *Importer {
	return &Importer{
		loader:   loader,
		products: products,
		logger:   logger.With().Str("component", "catalog-importer").Logger(),
	}
}

// Import loads every path in order and creates one product per record.
// Records rejected by validation are skipped; any other failure stops the import.
func (i *Importer) Import(ctx context.Context, paths ...string) (ImportResult, error) {
	var result ImportResult

	for _, path := range paths {
		records, err := i.loader.Load(ctx, path)
		if err != nil {
			return result, fmt.Errorf("load %s: %w", path, err)
		}

		for n := range records {
			_, err := i.products.Create(ctx, &records[n])
			if err == nil {
				result.Created++
				continue
			}

			var verr *model.ValidationError
			if !errors.As(err, &verr) {
				return result, fmt.Errorf("import %s record %d: %w", path, n+1, err)
			}

			result.Skipped++
			i.logger.Warn().
				Str("path", path).
				Int("record", n+1).
				Interface("fields", verr.Fields).
				Msg("skipping invalid catalog record")
		}
	}

	i.logger.Info().
		Int("created", result.Created).
		Int("skipped", result.Skipped).
		Int("files", len(paths)).
		Msg("catalog import finished")

	return result, nil
}
