package repository

import (
	"context"
	"testing"

	"frankit/internal/database"
	"frankit/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductOptionRepository(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewProductOptionRepository(zerolog.Nop())
	ctx := context.Background()
	product := createProduct(t, pool, "Shirt")

	t.Run("INPUT option keeps its price", func(t *testing.T) {
		o := createOption(t, pool, product.ID, model.OptionTypeInput)

		got, err := repo.GetByID(ctx, pool, o.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, model.OptionTypeInput, got.OptionType)
		require.NotNil(t, got.OptionPrice)
		assertDecimal(t, "1.50", *got.OptionPrice)
	})

	t.Run("SELECT option stores NULL price", func(t *testing.T) {
		o := createOption(t, pool, product.ID, model.OptionTypeSelect)

		got, err := repo.GetByID(ctx, pool, o.ID)
		require.NoError(t, err)
		assert.Equal(t, model.OptionTypeSelect, got.OptionType)
		assert.Nil(t, got.OptionPrice)
	})

	t.Run("Update and CountActiveByProduct", func(t *testing.T) {
		count, err := repo.CountActiveByProduct(ctx, pool, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		o := createOption(t, pool, product.ID, model.OptionTypeSelect)
		o.Deactivate()
		o.OptionName = "colour"
		require.NoError(t, repo.Update(ctx, pool, o))

		count, err = repo.CountActiveByProduct(ctx, pool, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		got, err := repo.GetByID(ctx, pool, o.ID)
		require.NoError(t, err)
		assert.Equal(t, "colour", got.OptionName)
		assert.False(t, got.IsActive)
	})

	t.Run("ListByProduct", func(t *testing.T) {
		all, err := repo.ListByProduct(ctx, pool, product.ID, false)
		require.NoError(t, err)
		assert.Len(t, all, 3)
		for i := 1; i < len(all); i++ {
			assert.Less(t, all[i-1].ID, all[i].ID)
		}

		active, err := repo.ListByProduct(ctx, pool, product.ID, true)
		require.NoError(t, err)
		assert.Len(t, active, 2)

		none, err := repo.ListByProduct(ctx, pool, 999999, false)
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("Delete", func(t *testing.T) {
		price := decimal.RequireFromString("2")
		o := model.NewProductOption(product.ID, "engraving", model.OptionTypeInput, &price)
		require.NoError(t, repo.Create(ctx, pool, o))
		require.NoError(t, repo.Delete(ctx, pool, o.ID))

		got, err := repo.GetByID(ctx, pool, o.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("GetByIDForUpdate holds the row lock", func(t *testing.T) {
		o := createOption(t, pool, product.ID, model.OptionTypeSelect)
		tr := database.NewTransactor(pool, zerolog.Nop())

		err := tr.InTx(ctx, func(q database.Querier) error {
			got, err := repo.GetByIDForUpdate(ctx, q, o.ID)
			require.NoError(t, err)
			require.NotNil(t, got)

			_, err = pool.Exec(ctx, "SELECT id FROM product_options WHERE id = $1 FOR UPDATE NOWAIT", o.ID)
			var pgErr *pgconn.PgError
			require.ErrorAs(t, err, &pgErr)
			assert.Equal(t, database.CodeLockNotAvailable, pgErr.Code)
			return nil
		})
		require.NoError(t, err)

		missing, err := repo.GetByIDForUpdate(ctx, pool, 999999)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}
