package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func payload(amount string) domain.Movement {
	return domain.Movement{
		MovementID:       "mov-" + amount,
		Direction:        domain.Expense,
		OriginalAmount:   decimal.RequireFromString(amount),
		OriginalCurrency: domain.USD,
		FinalAmountUSD:   decimal.RequireFromString(amount),
	}
}

func TestQueue_EnqueueAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	queue := NewQueue(newTestStore(t))

	first, err := queue.Enqueue(ctx, domain.OpCreateMovement, payload("1"))
	require.NoError(t, err)
	second, err := queue.Enqueue(ctx, domain.OpCreateMovement, payload("2"))
	require.NoError(t, err)

	assert.Regexp(t, `^offline_\d+_[0-9a-f]+$`, first.OperationID)
	assert.NotEqual(t, first.OperationID, second.OperationID)
	assert.False(t, first.CapturedAt.IsZero())
}

func TestQueue_ListPreservesCaptureOrder(t *testing.T) {
	ctx := context.Background()
	queue := NewQueue(newTestStore(t))

	var ids []string
	for _, amount := range []string{"1", "2", "3"} {
		op, err := queue.Enqueue(ctx, domain.OpCreateMovement, payload(amount))
		require.NoError(t, err)
		ids = append(ids, op.OperationID)
	}

	ops, err := queue.List(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 3)
	for i, op := range ops {
		assert.Equal(t, ids[i], op.OperationID)
	}
}

func TestQueue_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	queue := NewQueue(store)
	op, err := queue.Enqueue(ctx, domain.OpCreateMovement, payload("1"))
	require.NoError(t, err)

	// Simulate a restart by reopening the same directory.
	reopened, err := NewStore(dir)
	require.NoError(t, err)
	ops, err := NewQueue(reopened).List(ctx)
	require.NoError(t, err)

	require.Len(t, ops, 1)
	assert.Equal(t, op.OperationID, ops[0].OperationID)
	assert.Equal(t, op.Payload.MovementID, ops[0].Payload.MovementID)
}

func TestQueue_RemoveMiddleKeepsNeighborsInOrder(t *testing.T) {
	ctx := context.Background()
	queue := NewQueue(newTestStore(t))

	var ids []string
	for _, amount := range []string{"1", "2", "3"} {
		op, err := queue.Enqueue(ctx, domain.OpCreateMovement, payload(amount))
		require.NoError(t, err)
		ids = append(ids, op.OperationID)
	}

	require.NoError(t, queue.Remove(ctx, ids[1]))
	// Removing an already-removed id is a no-op.
	require.NoError(t, queue.Remove(ctx, ids[1]))

	ops, err := queue.List(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, ids[0], ops[0].OperationID)
	assert.Equal(t, ids[2], ops[1].OperationID)
}

func TestQueue_CorruptFileReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, queueKey+".json"), []byte("{not json"), 0o600))

	queue := NewQueue(store)
	ops, err := queue.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)

	// A fresh enqueue replaces the corrupt state.
	_, err = queue.Enqueue(ctx, domain.OpCreateMovement, payload("1"))
	require.NoError(t, err)
	ops, err = queue.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ops, 1)
}
