package repository

import (
	"context"
	"testing"

	"frankit/internal/database/dbtest"
	"frankit/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	return dbtest.Setup(t).Pool
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func createProduct(t *testing.T, pool *pgxpool.Pool, name string) *model.Product {
	t.Helper()
	p := model.NewProduct(name, "description of "+name, decimal.RequireFromString("19.90"), decimal.RequireFromString("3.00"))
	require.NoError(t, NewProductRepository(zerolog.Nop()).Create(context.Background(), pool, p))
	return p
}

func createOption(t *testing.T, pool *pgxpool.Pool, productID int64, optionType model.OptionType) *model.ProductOption {
	t.Helper()
	price := decimal.RequireFromString("1.50")
	o := model.NewProductOption(productID, "size", optionType, &price)
	require.NoError(t, NewProductOptionRepository(zerolog.Nop()).Create(context.Background(), pool, o))
	return o
}
