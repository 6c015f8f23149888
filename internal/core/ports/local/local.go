// Package local defines the ports for device-local collaborators: the durable
// offline queue, the draft store, the reference-data cache, the PIN vault and
// the connectivity monitor. None of these entities are ever synced remotely;
// only the effects the queue describes are.
package local

import (
	"context"
	"encoding/json"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
)

// OfflineQueue is a durable, append-only log of pending remote writes.
// It survives process restarts; no operation is ever silently dropped except
// by Remove after a confirmed sync or an explicit Clear.
type OfflineQueue interface {
	// Enqueue assigns a locally-unique id and capture timestamp, appends the
	// operation to durable storage and returns the stored record.
	Enqueue(ctx context.Context, kind domain.OperationKind, payload domain.Movement) (domain.OfflineOperation, error)

	// List returns all pending operations in capture order.
	List(ctx context.Context) ([]domain.OfflineOperation, error)

	// Remove deletes one operation by id. Idempotent if the id is absent.
	Remove(ctx context.Context, operationID string) error

	// Clear empties the whole queue. Explicit resets only, not part of sync.
	Clear(ctx context.Context) error
}

// DraftStore stages in-progress form state, independent of the queue.
type DraftStore interface {
	// Save overwrites the draft for a form wholesale, stamping it with the
	// current time. No merge semantics.
	Save(ctx context.Context, formKey string, data json.RawMessage) error

	// Load returns the draft data if present and younger than the expiry
	// threshold. An expired draft is purged as a side effect and reported
	// absent. Storage read or parse errors are also reported absent.
	Load(ctx context.Context, formKey string) (json.RawMessage, bool, error)

	// Clear discards the draft for a form.
	Clear(ctx context.Context, formKey string) error
}

// ReferenceCache keeps last-known snapshots of remote reference data so forms
// can be populated before (or without) remote data arriving.
type ReferenceCache interface {
	PutAccounts(ctx context.Context, accounts []domain.Account) error
	Accounts(ctx context.Context) ([]domain.Account, bool)
	PutCategories(ctx context.Context, categories []domain.Category) error
	Categories(ctx context.Context) ([]domain.Category, bool)
	PutMovements(ctx context.Context, movements []domain.Movement) error
	Movements(ctx context.Context) ([]domain.Movement, bool)
}

// PINVault stores the bcrypt hash of the local unlock PIN.
type PINVault interface {
	SavePINHash(ctx context.Context, hash string) error

	// PINHash returns the stored hash, or ok=false when no PIN is configured.
	PINHash(ctx context.Context) (hash string, ok bool, err error)
}

// ConnectivityMonitor reports the device's online/offline state and notifies
// subscribers on every transition. The monitor performs no I/O itself; a
// separate prober feeds it.
type ConnectivityMonitor interface {
	// Online reports the current connectivity state.
	Online() bool

	// Subscribe registers a callback invoked on every transition. The
	// returned function fully detaches the callback; it is safe to call more
	// than once.
	Subscribe(fn func(online bool)) (unsubscribe func())
}
