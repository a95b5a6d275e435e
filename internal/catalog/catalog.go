// Package catalog seeds the product catalogue from gzipped JSON-lines files
// stored on local disk or in S3.
package catalog

import (
	"context"

	"frankit/internal/model"
)

// Loader defines the interface for loading catalog seed files.
type Loader interface {
	// Load reads a gzipped JSON-lines file, one product per line.
	Load(ctx context.Context, path string) ([]model.ProductRequest, error)
}

// ProductCreator is the part of the product service the importer needs.
type ProductCreator interface {
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)
}

// ImportResult summarises one import run.
type ImportResult struct {
	Created int
	Skipped int
}
