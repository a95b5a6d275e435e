package catalog

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"frankit/internal/model"

	"github.com/rs/zerolog"
)

// checkEvery is how many lines are read between context checks.
const checkEvery = 10_000

// readProducts decodes a gzipped JSON-lines stream. Blank lines are ignored and
// lines that are not valid JSON are skipped with a warning.
func readProducts(ctx context.Context, r io.Reader, source string, logger zerolog.Logger) ([]model.ProductRequest, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		logger.Error().Err(err).Str("source", source).Msg("failed to create gzip reader")
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", source, err)
	}
	defer gzipReader.Close()

	scanner := bufio.NewScanner(gzipReader)
	// Set larger buffer for long descriptions
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var products []model.ProductRequest
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%checkEvery == 0 {
			select {
			case <-ctx.Done():
				logger.Warn().Str("source", source).Msg("catalog loading cancelled")
				return nil, ctx.Err()
			default:
			}
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var req model.ProductRequest
		if err := json.Unmarshal(line, &req); err != nil {
			logger.Warn().
				Err(err).
				Str("source", source).
				Int("line", lineNo).
				Msg("skipping malformed catalog line")
			continue
		}
		products = append(products, req)
	}

	if err := scanner.Err(); err != nil {
		logger.Error().Err(err).Str("source", source).Msg("error reading catalog file")
		return nil, fmt.Errorf("error reading catalog file %s: %w", source, err)
	}

	return products, nil
}
