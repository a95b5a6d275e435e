package service

import (
	"context"
	"fmt"
	"math"

	"frankit/internal/database"
	"frankit/internal/model"
	"frankit/internal/repository"

	"github.com/rs/zerolog"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	maxPageOffset   = math.MaxInt32
)

// productService implements ProductService.
type productService struct {
	tx          database.Transactor
	productRepo repository.ProductRepository
	orders      OrderChecker
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(
	tx database.Transactor,
	productRepo repository.ProductRepository,
	orders OrderChecker,
	logger zerolog.Logger,
) ProductService {
	return &productService{
		tx:          tx,
		productRepo: productRepo,
		orders:      orders,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	product := model.NewProduct(req.Name, req.Description, *req.Price, *req.ShippingFee)
	err := s.tx.InTx(ctx, func(q database.Querier) error {
		return s.productRepo.Create(ctx, q, product)
	})
	if database.IsValueOutOfRange(err) {
		s.logger.Warn().Err(err).Str("name", req.Name).Msg("product value out of range")
		return nil, errValueOutOfRange
	}
	if err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Str("name", product.Name).
		Str("price", product.Price.String()).
		Msg("product created")

	return product, nil
}

func (s *productService) Update(ctx context.Context, id int64, req *model.ProductRequest) (*model.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var product *model.Product
	err := s.tx.InTx(ctx, func(q database.Querier) error {
		var err error
		if product, err = s.find(ctx, q, id); err != nil {
			return err
		}

		product.Update(req.Name, req.Description, *req.Price, *req.ShippingFee)
		return s.productRepo.Update(ctx, q, product)
	})
	if err != nil {
		return nil, s.fail(err, id, "failed to update product")
	}

	s.logger.Info().Int64("product_id", id).Msg("product updated")

	return product, nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	err := s.tx.InTx(ctx, func(q database.Querier) error {
		product, err := s.find(ctx, q, id)
		if err != nil {
			return err
		}

		hasOrder, err := s.orders.HasProductOrders(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check product orders: %w", err)
		}
		s.logger.Debug().
			Int64("product_id", id).
			Bool("has_order", hasOrder).
			Bool("is_active", product.IsActive).
			Msg("product delete requested")

		if !product.IsDeletable(hasOrder) {
			return model.ErrProductCannotBeDeleted
		}
		return s.productRepo.Delete(ctx, q, id)
	})
	if err != nil {
		return s.fail(err, id, "failed to delete product")
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")

	return nil
}

func (s *productService) Activate(ctx context.Context, id int64) error {
	err := s.tx.InTx(ctx, func(q database.Querier) error {
		product, err := s.find(ctx, q, id)
		if err != nil {
			return err
		}
		if err := product.Activate(); err != nil {
			return err
		}
		return s.productRepo.Update(ctx, q, product)
	})
	if err != nil {
		return s.fail(err, id, "failed to activate product")
	}

	s.logger.Info().Int64("product_id", id).Msg("product activated")

	return nil
}

func (s *productService) Deactivate(ctx context.Context, id int64) error {
	err := s.tx.InTx(ctx, func(q database.Querier) error {
		product, err := s.find(ctx, q, id)
		if err != nil {
			return err
		}
		product.Deactivate()
		return s.productRepo.Update(ctx, q, product)
	})
	if err != nil {
		return s.fail(err, id, "failed to deactivate product")
	}

	s.logger.Info().Int64("product_id", id).Msg("product deactivated")

	return nil
}

func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var product *model.Product
	err := s.tx.InReadTx(ctx, func(q database.Querier) error {
		var err error
		product, err = s.find(ctx, q, id)
		return err
	})
	if err != nil {
		return nil, s.fail(err, id, "failed to get product")
	}

	return product, nil
}

// GetAll retrieves products with pagination. Out-of-range arguments are
// clamped, except a page whose offset would pass maxPageOffset.
func (s *productService) GetAll(ctx context.Context, page, size int) (*model.Page[model.Product], error) {
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	if page < 0 {
		page = 0
	}
	if page > maxPageOffset/size {
		return nil, model.ErrPageOutOfRange
	}

	var (
		products []model.Product
		total    int64
	)
	err := s.tx.InReadTx(ctx, func(q database.Querier) error {
		var err error
		if products, err = s.productRepo.GetAll(ctx, q, size, page*size); err != nil {
			return err
		}
		total, err = s.productRepo.Count(ctx, q)
		return err
	})
	if err != nil {
		s.logger.Error().Err(err).
			Int("page", page).
			Int("size", size).
			Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Int("page", page).
		Int("size", size).
		Msg("retrieved products")

	return model.NewPage(products, page, size, total), nil
}

func (s *productService) find(ctx context.Context, q database.Querier, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, q, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	return product, nil
}

func (s *productService) fail(err error, id int64, msg string) error {
	return logFailure(s.logger, err, "product_id", id, msg)
}
