package database

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// TxOptions controls how a transaction is started and retried.
type TxOptions struct {
	IsoLevel   pgx.TxIsoLevel
	ReadOnly   bool
	MaxRetries int
}

func DefaultTxOptions() TxOptions {
	return TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		ReadOnly:   false,
		MaxRetries: 3,
	}
}

func ReadOnlyTxOptions() TxOptions {
	opts := DefaultTxOptions()
	opts.ReadOnly = true
	return opts
}

// TxBeginner is implemented by *pgxpool.Pool.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// WithTx runs fn inside a transaction, committing when fn returns nil and
// rolling back otherwise. Deadlocks and serialization failures restart the
// whole transaction up to opts.MaxRetries times.
func WithTx(ctx context.Context, db TxBeginner, opts TxOptions, fn func(q Querier) error) error {
	backoff := 50 * time.Millisecond

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := runTx(ctx, db, opts, fn)
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return err
		}
		if attempt >= opts.MaxRetries {
			return fmt.Errorf("max retries (%d) exceeded: %w", opts.MaxRetries, err)
		}

		jitter := time.Duration(rand.Int63n(int64(backoff / 4)))
		select {
		case <-time.After(backoff + jitter):
		case <-ctx.Done():
			return ctx.Err()
		}
		backoff *= 2
	}
}

func runTx(ctx context.Context, db TxBeginner, opts TxOptions, fn func(q Querier) error) error {
	accessMode := pgx.ReadWrite
	if opts.ReadOnly {
		accessMode = pgx.ReadOnly
	}

	tx, err := db.BeginTx(ctx, pgx.TxOptions{IsoLevel: opts.IsoLevel, AccessMode: accessMode})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// Transactor opens the unit of work each service method runs in.
type Transactor interface {
	InTx(ctx context.Context, fn func(q Querier) error) error
	InReadTx(ctx context.Context, fn func(q Querier) error) error
}

type poolTransactor struct {
	db     TxBeginner
	logger zerolog.Logger
}

// NewTransactor returns a Transactor backed by db.
func NewTransactor(db TxBeginner, logger zerolog.Logger) Transactor {
	return &poolTransactor{
		db:     db,
		logger: logger.With().Str("component", "transactor").Logger(),
	}
}

func (t *poolTransactor) InTx(ctx context.Context, fn func(q Querier) error) error {
	return t.run(ctx, DefaultTxOptions(), fn)
}

func (t *poolTransactor) InReadTx(ctx context.Context, fn func(q Querier) error) error {
	return t.run(ctx, ReadOnlyTxOptions(), fn)
}

func (t *poolTransactor) run(ctx context.Context, opts TxOptions, fn func(q Querier) error) error {
	err := WithTx(ctx, t.db, opts, fn)
	if err != nil && IsRetryable(err) {
		t.logger.Warn().Err(err).Msg("transaction gave up after retries")
	}
	return err
}
