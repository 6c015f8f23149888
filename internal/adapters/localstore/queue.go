package localstore

import (
	"context"
	"fmt"
	"time"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/ports/local"
	"github.com/bolsillo-app/bolsillo_backend/internal/utils"
)

const queueKey = "offline_queue"

// Queue is the durable offline operation queue. Insertion order is preserved
// by the underlying slice; List never re-sorts. A corrupt or unreadable queue
// reads as empty rather than failing, so a parse error cannot wedge the
// write path.
type Queue struct {
	store *Store
}

// NewQueue creates a queue over the given store.
func NewQueue(store *Store) *Queue {
	return &Queue{store: store}
}

var _ local.OfflineQueue = (*Queue)(nil)

// Enqueue assigns a locally-unique id and capture timestamp, appends the
// operation and persists the queue.
func (q *Queue) Enqueue(ctx context.Context, kind domain.OperationKind, payload domain.Movement) (domain.OfflineOperation, error) {
	id, err := utils.NewOfflineOperationID()
	if err != nil {
		return domain.OfflineOperation{}, err
	}
	op := domain.OfflineOperation{
		OperationID: id,
		Kind:        kind,
		CapturedAt:  time.Now().UTC(),
		Payload:     payload,
	}

	ops := q.load()
	ops = append(ops, op)
	if err := q.store.Put(queueKey, ops); err != nil {
		return domain.OfflineOperation{}, fmt.Errorf("failed to persist offline queue: %w", err)
	}
	return op, nil
}

// List returns all pending operations in capture order.
func (q *Queue) List(ctx context.Context) ([]domain.OfflineOperation, error) {
	return q.load(), nil
}

// Remove deletes one operation by id. Idempotent if the id is absent.
func (q *Queue) Remove(ctx context.Context, operationID string) error {
	ops := q.load()
	filtered := ops[:0]
	for _, op := range ops {
		if op.OperationID != operationID {
			filtered = append(filtered, op)
		}
	}
	if err := q.store.Put(queueKey, filtered); err != nil {
		return fmt.Errorf("failed to persist offline queue: %w", err)
	}
	return nil
}

// Clear empties the whole queue. Used only for explicit resets.
func (q *Queue) Clear(ctx context.Context) error {
	return q.store.Delete(queueKey)
}

func (q *Queue) load() []domain.OfflineOperation {
	var ops []domain.OfflineOperation
	if ok, err := q.store.Get(queueKey, &ops); !ok || err != nil {
		return nil
	}
	return ops
}
