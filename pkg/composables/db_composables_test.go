package composables_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vandaszabo/mintaprojekt/pkg/composables"
)

func TestUsePool_Missing(t *testing.T) {
	_, err := composables.UsePool(context.Background())
	require.ErrorIs(t, err, composables.ErrNoPool)

	_, err = composables.UseTx(context.Background())
	require.ErrorIs(t, err, composables.ErrNoPool)
}

func TestInTx_CommitsOnSuccess(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE roles").
		WithArgs("x").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	ctx := composables.WithPool(context.Background(), mock)
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		tx, err := composables.UseTx(txCtx)
		require.NoError(t, err)
		_, err = tx.Exec(txCtx, "UPDATE roles SET name = $1", "x")
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_RollsBackOnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	ctx := composables.WithPool(context.Background(), mock)
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUseActor(t *testing.T) {
	_, err := composables.UseActor(context.Background())
	require.ErrorIs(t, err, composables.ErrNoActor)

	actorID := uuid.New()
	ctx := composables.WithActor(context.Background(), actorID)
	got, err := composables.UseActor(ctx)
	require.NoError(t, err)
	assert.Equal(t, actorID, got)
}
