package service

import (
	"context"
	"fmt"

	"frankit/internal/database"
	"frankit/internal/model"
	"frankit/internal/repository"

	"github.com/rs/zerolog"
)

// detailService implements OptionDetailService.
type detailService struct {
	tx         database.Transactor
	optionRepo repository.ProductOptionRepository
	detailRepo repository.OptionDetailRepository
	orders     OrderChecker
	logger     zerolog.Logger
}

// NewOptionDetailService creates a new option detail service.
func NewOptionDetailService(
	tx database.Transactor,
	optionRepo repository.ProductOptionRepository,
	detailRepo repository.OptionDetailRepository,
	orders OrderChecker,
	logger zerolog.Logger,
) OptionDetailService {
	return &detailService{
		tx:         tx,
		optionRepo: optionRepo,
		detailRepo: detailRepo,
		orders:     orders,
		logger:     logger.With().Str("service", "option_detail").Logger(),
	}
}

func (s *detailService) Create(ctx context.Context, optionID int64, req *model.OptionDetailRequest) (*model.OptionDetail, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var detail *model.OptionDetail
	err := s.tx.InTx(ctx, func(q database.Querier) error {
		option, err := s.lockOption(ctx, q, optionID)
		if err != nil {
			return err
		}

		if detail, err = model.NewOptionDetail(option, req.DetailName, *req.DetailPrice); err != nil {
			return err
		}
		return s.detailRepo.Create(ctx, q, detail)
	})
	if err != nil {
		return nil, logFailure(s.logger, err, "option_id", optionID, "failed to create option detail")
	}

	s.logger.Info().
		Int64("option_id", optionID).
		Int64("detail_id", detail.ID).
		Str("detail_price", detail.DetailPrice.String()).
		Msg("option detail created")

	return detail, nil
}

func (s *detailService) Update(ctx context.Context, detailID int64, req *model.OptionDetailRequest) (*model.OptionDetail, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var detail *model.OptionDetail
	err := s.tx.InTx(ctx, func(q database.Querier) error {
		var err error
		if detail, err = s.find(ctx, q, detailID); err != nil {
			return err
		}

		hasOrder, err := s.orders.HasDetailOrders(ctx, detailID)
		if err != nil {
			return fmt.Errorf("failed to check detail orders: %w", err)
		}
		if err := detail.Update(req.DetailName, *req.DetailPrice, hasOrder); err != nil {
			return err
		}
		return s.detailRepo.Update(ctx, q, detail)
	})
	if err != nil {
		return nil, logFailure(s.logger, err, "detail_id", detailID, "failed to update option detail")
	}

	s.logger.Info().Int64("detail_id", detailID).Msg("option detail updated")

	return detail, nil
}

func (s *detailService) Delete(ctx context.Context, detailID int64) error {
	err := s.tx.InTx(ctx, func(q database.Querier) error {
		detail, err := s.find(ctx, q, detailID)
		if err != nil {
			return err
		}

		hasOrder, err := s.orders.HasDetailOrders(ctx, detailID)
		if err != nil {
			return fmt.Errorf("failed to check detail orders: %w", err)
		}
		if !detail.IsDeletable(hasOrder) {
			return model.ErrOptionDetailCannotBeDeleted
		}
		return s.detailRepo.Delete(ctx, q, detailID)
	})
	if err != nil {
		return logFailure(s.logger, err, "detail_id", detailID, "failed to delete option detail")
	}

	s.logger.Info().Int64("detail_id", detailID).Msg("option detail deleted")

	return nil
}

func (s *detailService) Activate(ctx context.Context, detailID int64) error {
	err := s.tx.InTx(ctx, func(q database.Querier) error {
		detail, err := s.find(ctx, q, detailID)
		if err != nil {
			return err
		}
		option, err := s.lockOption(ctx, q, detail.OptionID)
		if err != nil {
			return err
		}
		if err := detail.Activate(option); err != nil {
			return err
		}
		return s.detailRepo.Update(ctx, q, detail)
	})
	if err != nil {
		return logFailure(s.logger, err, "detail_id", detailID, "failed to activate option detail")
	}

	s.logger.Info().Int64("detail_id", detailID).Msg("option detail activated")

	return nil
}

func (s *detailService) Deactivate(ctx context.Context, detailID int64) error {
	err := s.tx.InTx(ctx, func(q database.Querier) error {
		detail, err := s.find(ctx, q, detailID)
		if err != nil {
			return err
		}
		detail.Deactivate()
		return s.detailRepo.Update(ctx, q, detail)
	})
	if err != nil {
		return logFailure(s.logger, err, "detail_id", detailID, "failed to deactivate option detail")
	}

	s.logger.Info().Int64("detail_id", detailID).Msg("option detail deactivated")

	return nil
}

func (s *detailService) ListByOption(ctx context.Context, optionID int64) ([]*model.OptionDetail, error) {
	return s.list(ctx, optionID, false)
}

func (s *detailService) ListActiveByOption(ctx context.Context, optionID int64) ([]*model.OptionDetail, error) {
	return s.list(ctx, optionID, true)
}

func (s *detailService) list(ctx context.Context, optionID int64, activeOnly bool) ([]*model.OptionDetail, error) {
	var details []*model.OptionDetail
	err := s.tx.InReadTx(ctx, func(q database.Querier) error {
		if _, err := s.findOption(ctx, q, optionID); err != nil {
			return err
		}

		var err error
		details, err = s.detailRepo.ListByOption(ctx, q, optionID, activeOnly)
		return err
	})
	if err != nil {
		return nil, logFailure(s.logger, err, "option_id", optionID, "failed to list option details")
	}

	if activeOnly && len(details) == 0 {
		s.logger.Warn().Int64("option_id", optionID).Msg("option has no active details")
	}

	return details, nil
}

func (s *detailService) find(ctx context.Context, q database.Querier, id int64) (*model.OptionDetail, error) {
	detail, err := s.detailRepo.GetByID(ctx, q, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get option detail: %w", err)
	}
	if detail == nil {
		return nil, model.ErrOptionDetailNotFound
	}
	return detail, nil
}

func (s *detailService) findOption(ctx context.Context, q database.Querier, id int64) (*model.ProductOption, error) {
	return lookupOption(s.optionRepo.GetByID(ctx, q, id))
}

// lockOption holds the parent row so its active state cannot change before
// the detail is written.
func (s *detailService) lockOption(ctx context.Context, q database.Querier, id int64) (*model.ProductOption, error) {
	return lookupOption(s.optionRepo.GetByIDForUpdate(ctx, q, id))
}
