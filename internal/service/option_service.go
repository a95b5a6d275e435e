package service

import (
	"context"
	"fmt"

	"frankit/internal/database"
	"frankit/internal/model"
	"frankit/internal/repository"

	"github.com/rs/zerolog"
)

// optionService implements ProductOptionService.
type optionService struct {
	tx          database.Transactor
	productRepo repository.ProductRepository
	optionRepo  repository.ProductOptionRepository
	detailRepo  repository.OptionDetailRepository
	orders      OrderChecker
	logger      zerolog.Logger
}

// NewProductOptionService creates a new product option service.
func NewProductOptionService(
	tx database.Transactor,
	productRepo repository.ProductRepository,
	optionRepo repository.ProductOptionRepository,
	detailRepo repository.OptionDetailRepository,
	orders OrderChecker,
	logger zerolog.Logger,
) ProductOptionService {
	return &optionService{
		tx:          tx,
		productRepo: productRepo,
		optionRepo:  optionRepo,
		detailRepo:  detailRepo,
		orders:      orders,
		logger:      logger.With().Str("service", "product_option").Logger(),
	}
}

func (s *optionService) Create(ctx context.Context, productID int64, req *model.ProductOptionRequest) (*model.ProductOption, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var option *model.ProductOption
	err := s.tx.InTx(ctx, func(q database.Querier) error {
		if _, err := s.lockProduct(ctx, q, productID); err != nil {
			return err
		}

		var err error
		option, err = s.createLocked(ctx, q, productID, req)
		return err
	})
	if err != nil {
		return nil, logFailure(s.logger, err, "product_id", productID, "failed to create option")
	}

	s.logger.Info().
		Int64("product_id", productID).
		Int64("option_id", option.ID).
		Str("option_type", string(option.OptionType)).
		Msg("option created")

	return option, nil
}

// createLocked inserts a new option. The product row must already be locked.
func (s *optionService) createLocked(ctx context.Context, q database.Querier, productID int64, req *model.ProductOptionRequest) (*model.ProductOption, error) {
	activeCount, err := s.optionRepo.CountActiveByProduct(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	if err := model.CheckOptionCapacity(activeCount); err != nil {
		return nil, err
	}

	option := model.NewProductOption(productID, req.OptionName, req.OptionType, req.OptionPrice)
	if err := s.optionRepo.Create(ctx, q, option); err != nil {
		return nil, err
	}
	return option, nil
}

func (s *optionService) Update(ctx context.Context, optionID int64, req *model.ProductOptionRequest) (*model.ProductOption, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var result *model.ProductOption
	err := s.tx.InTx(ctx, func(q database.Querier) error {
		option, err := s.lock(ctx, q, optionID)
		if err != nil {
			return err
		}

		hasOrder, err := s.orders.HasOptionOrders(ctx, optionID)
		if err != nil {
			return fmt.Errorf("failed to check option orders: %w", err)
		}
		if !option.IsUpdatable(hasOrder) {
			return model.ErrOptionCannotBeUpdated
		}

		if !option.TypeChanged(req.OptionType) {
			if err := option.Update(req.OptionName, req.OptionType, req.OptionPrice, hasOrder); err != nil {
				return err
			}
			result = option
			return s.optionRepo.Update(ctx, q, option)
		}

		// A type change retires the option and adds a replacement under the same product.
		s.logger.Info().
			Int64("option_id", optionID).
			Str("from", string(option.OptionType)).
			Str("to", string(req.OptionType)).
			Msg("option type changed")

		if _, err := s.lockProduct(ctx, q, option.ProductID); err != nil {
			return err
		}
		if err := s.deactivate(ctx, q, option); err != nil {
			return err
		}
		result, err = s.createLocked(ctx, q, option.ProductID, req)
		return err
	})
	if err != nil {
		return nil, logFailure(s.logger, err, "option_id", optionID, "failed to update option")
	}

	s.logger.Info().
		Int64("option_id", optionID).
		Int64("result_id", result.ID).
		Msg("option updated")

	return result, nil
}

func (s *optionService) Delete(ctx context.Context, optionID int64) error {
	err := s.tx.InTx(ctx, func(q database.Querier) error {
		option, err := s.find(ctx, q, optionID)
		if err != nil {
			return err
		}

		hasOrder, err := s.orders.HasOptionOrders(ctx, optionID)
		if err != nil {
			return fmt.Errorf("failed to check option orders: %w", err)
		}
		if !option.IsDeletable(hasOrder) {
			return model.ErrOptionCannotBeDeleted
		}
		return s.optionRepo.Delete(ctx, q, optionID)
	})
	if err != nil {
		return logFailure(s.logger, err, "option_id", optionID, "failed to delete option")
	}

	s.logger.Info().Int64("option_id", optionID).Msg("option deleted")

	return nil
}

func (s *optionService) Activate(ctx context.Context, optionID int64) error {
	err := s.tx.InTx(ctx, func(q database.Querier) error {
		option, err := s.lock(ctx, q, optionID)
		if err != nil {
			return err
		}
		if _, err := s.lockProduct(ctx, q, option.ProductID); err != nil {
			return err
		}
		if err := s.loadDetails(ctx, q, option); err != nil {
			return err
		}

		activeCount, err := s.optionRepo.CountActiveByProduct(ctx, q, option.ProductID)
		if err != nil {
			return err
		}
		if err := option.Activate(activeCount); err != nil {
			return err
		}
		return s.save(ctx, q, option)
	})
	if err != nil {
		return logFailure(s.logger, err, "option_id", optionID, "failed to activate option")
	}

	s.logger.Info().Int64("option_id", optionID).Msg("option activated")

	return nil
}

func (s *optionService) Deactivate(ctx context.Context, optionID int64) error {
	err := s.tx.InTx(ctx, func(q database.Querier) error {
		option, err := s.lock(ctx, q, optionID)
		if err != nil {
			return err
		}
		return s.deactivate(ctx, q, option)
	})
	if err != nil {
		return logFailure(s.logger, err, "option_id", optionID, "failed to deactivate option")
	}

	s.logger.Info().Int64("option_id", optionID).Msg("option deactivated")

	return nil
}

func (s *optionService) ListByProduct(ctx context.Context, productID int64) ([]*model.ProductOption, error) {
	return s.list(ctx, productID, false)
}

func (s *optionService) ListActiveByProduct(ctx context.Context, productID int64) ([]*model.ProductOption, error) {
	return s.list(ctx, productID, true)
}

func (s *optionService) list(ctx context.Context, productID int64, activeOnly bool) ([]*model.ProductOption, error) {
	var options []*model.ProductOption
	err := s.tx.InReadTx(ctx, func(q database.Querier) error {
		var err error
		options, err = s.optionRepo.ListByProduct(ctx, q, productID, activeOnly)
		return err
	})
	if err != nil {
		return nil, logFailure(s.logger, err, "product_id", productID, "failed to list options")
	}

	if activeOnly && len(options) == 0 {
		s.logger.Warn().Int64("product_id", productID).Msg("product has no active options")
	}

	return options, nil
}

func (s *optionService) deactivate(ctx context.Context, q database.Querier, option *model.ProductOption) error {
	if err := s.loadDetails(ctx, q, option); err != nil {
		return err
	}
	option.Deactivate()
	return s.save(ctx, q, option)
}

// save writes the option and the active state of its loaded details.
func (s *optionService) save(ctx context.Context, q database.Querier, option *model.ProductOption) error {
	if err := s.optionRepo.Update(ctx, q, option); err != nil {
		return err
	}
	return s.detailRepo.SaveActiveStates(ctx, q, option.Details)
}

func (s *optionService) loadDetails(ctx context.Context, q database.Querier, option *model.ProductOption) error {
	details, err := s.detailRepo.ListByOption(ctx, q, option.ID, false)
	if err != nil {
		return err
	}
	option.Details = details
	return nil
}

func (s *optionService) lockProduct(ctx context.Context, q database.Querier, productID int64) (*model.Product, error) {
	product, err := s.productRepo.GetByIDForUpdate(ctx, q, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	return product, nil
}

func (s *optionService) find(ctx context.Context, q database.Querier, id int64) (*model.ProductOption, error) {
	return lookupOption(s.optionRepo.GetByID(ctx, q, id))
}

// lock reads the option under a row lock so detail writes on it wait for
// this transaction.
func (s *optionService) lock(ctx context.Context, q database.Querier, id int64) (*model.ProductOption, error) {
	return lookupOption(s.optionRepo.GetByIDForUpdate(ctx, q, id))
}

func lookupOption(option *model.ProductOption, err error) (*model.ProductOption, error) {
	if err != nil {
		return nil, fmt.Errorf("failed to get option: %w", err)
	}
	if option == nil {
		return nil, model.ErrOptionNotFound
	}
	return option, nil
}
