package repository

import (
	"context"

	"frankit/internal/database"
	"frankit/internal/model"
)

// Every method takes the Querier it runs on so callers decide the
// transaction boundary. Lookups return nil, nil when no row matches.

// UserRepository defines data access for back-office users.
type UserRepository interface {
	// Create inserts u and fills in its ID and timestamps.
	Create(ctx context.Context, q database.Querier, u *model.User) error

	GetByEmail(ctx context.Context, q database.Querier, email string) (*model.User, error)

	ExistsByEmail(ctx context.Context, q database.Querier, email string) (bool, error)
}

// ProductRepository defines data access for products.
type ProductRepository interface {
	// Create inserts p and fills in its ID and timestamps.
	Create(ctx context.Context, q database.Querier, p *model.Product) error

	// Update writes every mutable column of p and refreshes UpdatedAt.
	Update(ctx context.Context, q database.Querier, p *model.Product) error

	// Delete removes the product; its options and details go with it.
	Delete(ctx context.Context, q database.Querier, id int64) error

	GetByID(ctx context.Context, q database.Querier, id int64) (*model.Product, error)

	// GetByIDForUpdate locks the product row until the transaction ends.
	GetByIDForUpdate(ctx context.Context, q database.Querier, id int64) (*model.Product, error)

	// GetAll retrieves products ordered by ID with pagination support.
	GetAll(ctx context.Context, q database.Querier, limit, offset int) ([]model.Product, error)

	Count(ctx context.Context, q database.Querier) (int64, error)
}

// ProductOptionRepository defines data access for product options.
type ProductOptionRepository interface {
	Create(ctx context.Context, q database.Querier, o *model.ProductOption) error

	Update(ctx context.Context, q database.Querier, o *model.ProductOption) error

	Delete(ctx context.Context, q database.Querier, id int64) error

	GetByID(ctx context.Context, q database.Querier, id int64) (*model.ProductOption, error)

	// GetByIDForUpdate is GetByID holding the row lock until the transaction ends.
	GetByIDForUpdate(ctx context.Context, q database.Querier, id int64) (*model.ProductOption, error)

	// ListByProduct returns the product's options ordered by ID.
	ListByProduct(ctx context.Context, q database.Querier, productID int64, activeOnly bool) ([]*model.ProductOption, error)

	CountActiveByProduct(ctx context.Context, q database.Querier, productID int64) (int, error)
}

// OptionDetailRepository defines data access for option details.
type OptionDetailRepository interface {
	Create(ctx context.Context, q database.Querier, d *model.OptionDetail) error

	Update(ctx context.Context, q database.Querier, d *model.OptionDetail) error

	Delete(ctx context.Context, q database.Querier, id int64) error

	GetByID(ctx context.Context, q database.Querier, id int64) (*model.OptionDetail, error)

	// ListByOption returns the option's details ordered by ID.
	ListByOption(ctx context.Context, q database.Querier, optionID int64, activeOnly bool) ([]*model.OptionDetail, error)

	// SaveActiveStates persists IsActive of every detail in one batch.
	SaveActiveStates(ctx context.Context, q database.Querier, details []*model.OptionDetail) error
}

// OrderRepository answers whether catalogue entries appear in any order.
type OrderRepository interface {
	HasProductOrders(ctx context.Context, productID int64) (bool, error)

	HasOptionOrders(ctx context.Context, optionID int64) (bool, error)

	HasDetailOrders(ctx context.Context, detailID int64) (bool, error)
}

// scanner is satisfied by pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}
