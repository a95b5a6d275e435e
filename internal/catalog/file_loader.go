package catalog

import (
	"context"
	"fmt"
	"os"

	"frankit/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for gzipped seed files on local disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalog loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.ProductRequest, error) {
	l.logger.Info().Str("file", filePath).Msg("loading catalog file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open catalog file")
		return nil, fmt.Errorf("failed to open catalog file %s: %w", filePath, err)
	}
	defer file.Close()

	products, err := readProducts(ctx, file, filePath, l.logger)
	if err != nil {
		return nil, err
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products_loaded", len(products)).
		Msg("catalog file loaded successfully")

	return products, nil
}
