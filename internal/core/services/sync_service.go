package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/bolsillo-app/bolsillo_backend/internal/apperrors"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/ports/local"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/ports/repositories"
	portssvc "github.com/bolsillo-app/bolsillo_backend/internal/core/ports/services"
)

// SyncService drains the offline queue against the remote repository.
// It runs outside any request scope, so it carries its own logger.
type SyncService struct {
	queue        local.OfflineQueue
	movementRepo repositories.MovementWriter
	monitor      local.ConnectivityMonitor
	logger       *slog.Logger

	mu      sync.Mutex
	syncing bool
}

// NewSyncService creates a new SyncService.
func NewSyncService(
	queue local.OfflineQueue,
	movementRepo repositories.MovementWriter,
	monitor local.ConnectivityMonitor,
	logger *slog.Logger,
) *SyncService {
	return &SyncService{
		queue:        queue,
		movementRepo: movementRepo,
		monitor:      monitor,
		logger:       logger,
	}
}

var _ portssvc.SyncSvcFacade = (*SyncService)(nil)

// Sync drains a snapshot of the queue taken at pass start, in capture order.
// Each operation is removed immediately after its confirmed remote success so
// a crash mid-drain cannot re-submit already-synced operations. Failures are
// isolated per operation: they stay queued and later items still run.
func (s *SyncService) Sync(ctx context.Context) (*domain.SyncResult, error) {
	s.mu.Lock()
	if s.syncing {
		s.mu.Unlock()
		return nil, apperrors.ErrSyncInProgress
	}
	s.syncing = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.syncing = false
		s.mu.Unlock()
	}()

	ops, err := s.queue.List(ctx)
	if err != nil {
		return nil, err
	}
	result := &domain.SyncResult{Success: true}
	if len(ops) == 0 {
		return result, nil
	}

	s.logger.Info("Syncing pending offline operations", slog.Int("pending", len(ops)))

	for _, op := range ops {
		if err := s.dispatch(ctx, op); err != nil {
			s.logger.Warn("Failed to sync operation",
				slog.String("operation_id", op.OperationID),
				slog.String("kind", string(op.Kind)),
				slog.String("error", err.Error()))
			result.Failed++
			result.FailedOperations = append(result.FailedOperations, op)
			continue
		}
		if err := s.queue.Remove(ctx, op.OperationID); err != nil {
			// The remote write landed; removal is idempotent and will be
			// retried as a duplicate on the next pass.
			s.logger.Warn("Failed to remove synced operation from queue",
				slog.String("operation_id", op.OperationID),
				slog.String("error", err.Error()))
		}
		result.Synced++
	}

	result.Success = result.Failed == 0
	if result.Success {
		s.logger.Info("Sync completed", slog.Int("synced", result.Synced))
	} else {
		s.logger.Warn("Sync completed partially",
			slog.Int("synced", result.Synced), slog.Int("failed", result.Failed))
	}
	return result, nil
}

func (s *SyncService) dispatch(ctx context.Context, op domain.OfflineOperation) error {
	switch op.Kind {
	case domain.OpCreateMovement:
		err := s.movementRepo.SaveMovement(ctx, op.Payload)
		if errors.Is(err, apperrors.ErrDuplicate) {
			// A previous pass crashed between the remote write and the queue
			// removal. The movement already exists remotely; treat as synced.
			return nil
		}
		return err
	default:
		return errors.New("unknown operation kind " + string(op.Kind))
	}
}

// PendingCount reports the number of queued operations. Storage failures
// degrade to zero so pending-count UI state never breaks the application.
func (s *SyncService) PendingCount(ctx context.Context) int {
	ops, err := s.queue.List(ctx)
	if err != nil {
		return 0
	}
	return len(ops)
}

// Syncing reports whether a drain pass is currently running.
func (s *SyncService) Syncing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncing
}

// Start subscribes to connectivity transitions: a reconnect with a non-empty
// queue triggers an automatic drain. The drain runs in the background and is
// safe to complete unobserved since queue removal is idempotent. A trigger
// arriving while a pass is active is dropped, not queued.
func (s *SyncService) Start(ctx context.Context) (stop func()) {
	return s.monitor.Subscribe(func(online bool) {
		if !online {
			return
		}
		if s.PendingCount(ctx) == 0 {
			return
		}
		go func() {
			if _, err := s.Sync(ctx); err != nil && !errors.Is(err, apperrors.ErrSyncInProgress) {
				s.logger.Error("Automatic sync failed", slog.String("error", err.Error()))
			}
		}()
	})
}
