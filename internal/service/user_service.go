package service

import (
	"context"
	"fmt"

	"frankit/internal/database"
	"frankit/internal/model"
	"frankit/internal/repository"

	"github.com/rs/zerolog"
)

// userService implements UserService.
type userService struct {
	tx       database.Transactor
	userRepo repository.UserRepository
	hasher   PasswordHasher
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(tx database.Transactor, userRepo repository.UserRepository, hasher PasswordHasher, logger zerolog.Logger) UserService {
	return &userService{
		tx:       tx,
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// Register creates an account. Concurrent registrations of one email are
// resolved by the unique index and reported as ErrEmailAlreadyExists.
func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (*model.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	user := model.NewUser(req.Email, hash)
	err = s.tx.InTx(ctx, func(q database.Querier) error {
		exists, err := s.userRepo.ExistsByEmail(ctx, q, req.Email)
		if err != nil {
			return err
		}
		if exists {
			return model.ErrEmailAlreadyExists
		}
		return s.userRepo.Create(ctx, q, user)
	})
	if database.IsUniqueViolation(err) {
		err = model.ErrEmailAlreadyExists
	}
	if err != nil {
		if _, ok := model.AsDomainError(err); ok {
			s.logger.Warn().Str("email", req.Email).Msg("email already registered")
			return nil, err
		}
		s.logger.Error().Err(err).Msg("failed to register user")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info().Int64("user_id", user.ID).Str("email", user.Email).Msg("user registered")

	return model.NewUserResponse(user), nil
}
