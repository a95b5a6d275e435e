package repository

import (
	"context"
	"errors"
	"fmt"

	"frankit/internal/database"
	"frankit/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// userRepository implements the UserRepository interface using PostgreSQL.
type userRepository struct {
	logger zerolog.Logger
}

// NewUserRepository creates a new PostgreSQL-backed user repository.
func NewUserRepository(logger zerolog.Logger) UserRepository {
	return &userRepository{
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

func (r *userRepository) Create(ctx context.Context, q database.Querier, u *model.User) error {
	query := `
		INSERT INTO users (email, password, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, u.Email, u.PasswordHash).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			r.logger.Debug().Str("email", u.Email).Msg("email already registered")
		} else {
			r.logger.Error().Err(err).Msg("failed to create user")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, q database.Querier, email string) (*model.User, error) {
	query := `
		SELECT id, email, password, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var u model.User
	err := q.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("email", email).Msg("user not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &u, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, q database.Querier, email string) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)", email).Scan(&exists)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to check user email")
		return false, fmt.Errorf("failed to check user email: %w", err)
	}
	return exists, nil
}
