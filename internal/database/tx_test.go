package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx records how a transaction was finished. Methods not overridden panic.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (tx *fakeTx) Commit(ctx context.Context) error {
	tx.committed = true
	return tx.commitErr
}

func (tx *fakeTx) Rollback(ctx context.Context) error {
	tx.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs     []*fakeTx
	options []pgx.TxOptions
	err     error
}

func (b *fakeBeginner) BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	tx := &fakeTx{}
	b.txs = append(b.txs, tx)
	b.options = append(b.options, opts)
	return tx, nil
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := &fakeBeginner{}

	err := WithTx(context.Background(), db, DefaultTxOptions(), func(q Querier) error {
		assert.NotNil(t, q)
		return nil
	})

	require.NoError(t, err)
	require.Len(t, db.txs, 1)
	assert.True(t, db.txs[0].committed)
	assert.False(t, db.txs[0].rolledBack)
	assert.Equal(t, pgx.ReadWrite, db.options[0].AccessMode)
	assert.Equal(t, pgx.ReadCommitted, db.options[0].IsoLevel)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := &fakeBeginner{}
	boom := errors.New("boom")

	err := WithTx(context.Background(), db, DefaultTxOptions(), func(q Querier) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	require.Len(t, db.txs, 1)
	assert.True(t, db.txs[0].rolledBack)
	assert.False(t, db.txs[0].committed)
}

func TestWithTx_RetriesDeadlock(t *testing.T) {
	db := &fakeBeginner{}
	calls := 0

	err := WithTx(context.Background(), db, DefaultTxOptions(), func(q Querier) error {
		calls++
		if calls < 3 {
			return &pgconn.PgError{Code: CodeDeadlockDetected}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	require.Len(t, db.txs, 3)
	assert.True(t, db.txs[2].committed)
}

func TestWithTx_GivesUpAfterMaxRetries(t *testing.T) {
	db := &fakeBeginner{}
	opts := DefaultTxOptions()
	opts.MaxRetries = 1
	calls := 0

	err := WithTx(context.Background(), db, opts, func(q Querier) error {
		calls++
		return &pgconn.PgError{Code: CodeSerializationFailure}
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max retries (1) exceeded")
	assert.Equal(t, 2, calls)
}

func TestWithTx_BeginFailure(t *testing.T) {
	db := &fakeBeginner{err: errors.New("connection refused")}

	err := WithTx(context.Background(), db, DefaultTxOptions(), func(q Querier) error {
		t.Fatal("fn must not run")
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin transaction")
}

func TestWithTx_CancelledContext(t *testing.T) {
	db := &fakeBeginner{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithTx(ctx, db, DefaultTxOptions(), func(q Querier) error { return nil })

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, db.txs)
}

func TestTransactor_ReadOnly(t *testing.T) {
	db := &fakeBeginner{}
	tr := NewTransactor(db, zerolog.Nop())

	require.NoError(t, tr.InReadTx(context.Background(), func(q Querier) error { return nil }))
	require.NoError(t, tr.InTx(context.Background(), func(q Querier) error { return nil }))

	require.Len(t, db.options, 2)
	assert.Equal(t, pgx.ReadOnly, db.options[0].AccessMode)
	assert.Equal(t, pgx.ReadWrite, db.options[1].AccessMode)
}
