package services

import (
	"context"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
)

// SyncSvcFacade coordinates draining the offline queue against the remote
// repository.
type SyncSvcFacade interface {
	// Sync drains a snapshot of the queue in capture order. Each operation is
	// removed from the queue immediately after its confirmed remote success;
	// failures stay queued and do not block later items. A trigger while a
	// pass is already running returns apperrors.ErrSyncInProgress.
	Sync(ctx context.Context) (*domain.SyncResult, error)

	// PendingCount reports the number of queued operations. Storage failures
	// degrade to zero rather than erroring, so derived UI state keeps working.
	PendingCount(ctx context.Context) int

	// Syncing reports whether a pass is currently running.
	Syncing() bool

	// Start subscribes to connectivity transitions so a reconnect with a
	// non-empty queue triggers a drain. The returned function detaches the
	// subscription.
	Start(ctx context.Context) (stop func())
}
