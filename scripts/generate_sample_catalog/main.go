// Command generate_sample_catalog writes gzipped JSON-lines product seed files
// for CATALOG_SEED_FILES.
package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"frankit/internal/model"

	"github.com/shopspring/decimal"
)

func product(name, description, price, shippingFee string) model.ProductRequest {
	p := decimal.RequireFromString(price)
	f := decimal.RequireFromString(shippingFee)
	return model.ProductRequest{Name: name, Description: description, Price: &p, ShippingFee: &f}
}

func main() {
	dataDir := "data/catalog"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	files := map[string][]model.ProductRequest{
		"electronics.jsonl.gz": {
			product("Phone", "6.1 inch smartphone", "1000000", "3000"),
			product("Earbuds", "Wireless earbuds with case", "129000", "3000"),
			product("Charger", "65W USB-C charger", "39000", "0"),
		},
		"home.jsonl.gz": {
			product("Desk Lamp", "Adjustable arm, warm light", "49900", "3000"),
			product("Mug", "350ml stoneware", "12000", "2500"),
			// Rejected on import: missing description.
			product("Poster", "", "15000", "2500"),
		},
	}

	for filename, products := range files {
		filePath := filepath.Join(dataDir, filename)

		if err := createCatalogFile(filePath, products); err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}

		fmt.Printf("Created %s with %d products\n", filePath, len(products))
	}

	fmt.Println("\nSample catalog files created successfully!")
	fmt.Println("Seed them with:")
	fmt.Printf("  CATALOG_SEED_FILES=%s,%s\n",
		filepath.Join(dataDir, "electronics.jsonl.gz"),
		filepath.Join(dataDir, "home.jsonl.gz"))
}

func createCatalogFile(filePath string, products []model.ProductRequest) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	encoder := json.NewEncoder(gzipWriter)
	for _, p := range products {
		if err := encoder.Encode(p); err != nil {
			return fmt.Errorf("failed to write product: %w", err)
		}
	}

	return nil
}
