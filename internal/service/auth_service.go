package service

import (
	"context"
	"fmt"

	"frankit/internal/database"
	"frankit/internal/model"
	"frankit/internal/repository"

	"github.com/rs/zerolog"
)

// authService implements AuthService.
type authService struct {
	tx       database.Transactor
	userRepo repository.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   zerolog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	tx database.Transactor,
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		tx:       tx,
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var user *model.User
	err := s.tx.InReadTx(ctx, func(q database.Querier) error {
		var err error
		user, err = s.userRepo.GetByEmail(ctx, q, req.Email)
		return err
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to look up user")
		return nil, fmt.Errorf("failed to login: %w", err)
	}
	if user == nil {
		s.logger.Warn().Str("email", req.Email).Msg("login for unknown member")
		return nil, model.ErrMemberNotFound
	}

	ok, err := s.hasher.Matches(req.Password, user.PasswordHash)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to verify password")
		return nil, fmt.Errorf("failed to login: %w", err)
	}
	if !ok {
		s.logger.Warn().Int64("user_id", user.ID).Msg("invalid credentials")
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(user.Email)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to issue token")
		return nil, fmt.Errorf("failed to login: %w", err)
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user logged in")

	return &model.TokenResponse{Token: token}, nil
}
