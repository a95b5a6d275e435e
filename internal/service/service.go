package service

import (
	"context"

	"frankit/internal/model"
)

// ProductService defines operations for product management.
type ProductService interface {
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	Update(ctx context.Context, id int64, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product that has never been ordered.
	Delete(ctx context.Context, id int64) error

	Activate(ctx context.Context, id int64) error

	Deactivate(ctx context.Context, id int64) error

	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// GetAll returns one zero-based page of products ordered by ID.
	GetAll(ctx context.Context, page, size int) (*model.Page[model.Product], error)
}

// ProductOptionService defines operations for the options of a product.
type ProductOptionService interface {
	Create(ctx context.Context, productID int64, req *model.ProductOptionRequest) (*model.ProductOption, error)

	// Update edits the option in place, or retires it and returns a
	// replacement when the option type changes.
	Update(ctx context.Context, optionID int64, req *model.ProductOptionRequest) (*model.ProductOption, error)

	Delete(ctx context.Context, optionID int64) error

	// Activate turns the option and its details on.
	Activate(ctx context.Context, optionID int64) error

	// Deactivate turns the option and its details off.
	Deactivate(ctx context.Context, optionID int64) error

	ListByProduct(ctx context.Context, productID int64) ([]*model.ProductOption, error)

	ListActiveByProduct(ctx context.Context, productID int64) ([]*model.ProductOption, error)
}

// OptionDetailService defines operations for the details of a SELECT option.
type OptionDetailService interface {
	Create(ctx context.Context, optionID int64, req *model.OptionDetailRequest) (*model.OptionDetail, error)

	Update(ctx context.Context, detailID int64, req *model.OptionDetailRequest) (*model.OptionDetail, error)

	Delete(ctx context.Context, detailID int64) error

	Activate(ctx context.Context, detailID int64) error

	Deactivate(ctx context.Context, detailID int64) error

	ListByOption(ctx context.Context, optionID int64) ([]*model.OptionDetail, error)

	ListActiveByOption(ctx context.Context, optionID int64) ([]*model.OptionDetail, error)
}

// UserService manages back-office accounts.
type UserService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.UserResponse, error)
}

// AuthService exchanges credentials for an access token.
type AuthService interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error)
}

// OrderChecker reports whether catalogue entries appear in any order.
type OrderChecker interface {
	HasProductOrders(ctx context.Context, productID int64) (bool, error)
	HasOptionOrders(ctx context.Context, optionID int64) (bool, error)
	HasDetailOrders(ctx context.Context, detailID int64) (bool, error)
}

// TokenIssuer creates access tokens for authenticated users.
type TokenIssuer interface {
	CreateToken(email string) (string, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(password, hash string) (bool, error)
}
