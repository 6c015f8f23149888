package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bolsillo-app/bolsillo_backend/internal/apperrors"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/ports/local"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/ports/repositories"
	portssvc "github.com/bolsillo-app/bolsillo_backend/internal/core/ports/services"
	"github.com/bolsillo-app/bolsillo_backend/internal/dto"
	"github.com/bolsillo-app/bolsillo_backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementService implements the offline-resilient write path for movements.
// A write first attempts the remote repository; while known offline it skips
// the attempt entirely, and on a transient failure it is captured into the
// offline queue instead of being discarded.
type MovementService struct {
	movementRepo repositories.MovementRepositoryFacade
	rateSvc      portssvc.ExchangeRateResolverSvc
	queue        local.OfflineQueue
	monitor      local.ConnectivityMonitor
	cache        local.ReferenceCache
}

// NewMovementService creates a new MovementService.
func NewMovementService(
	movementRepo repositories.MovementRepositoryFacade,
	rateSvc portssvc.ExchangeRateResolverSvc,
	queue local.OfflineQueue,
	monitor local.ConnectivityMonitor,
	cache local.ReferenceCache,
) *MovementService {
	return &MovementService{
		movementRepo: movementRepo,
		rateSvc:      rateSvc,
		queue:        queue,
		monitor:      monitor,
		cache:        cache,
	}
}

var _ portssvc.MovementSvcFacade = (*MovementService)(nil)

// CreateMovement records a new movement, computing its USD equivalent at
// write time.
func (s *MovementService) CreateMovement(ctx context.Context, req dto.CreateMovementRequest, userID string) (*domain.MovementWriteResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.OriginalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: movement amount must be positive", apperrors.ErrValidation)
	}
	date, err := domain.ParseDay(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	movement := domain.Movement{
		MovementID:       uuid.NewString(),
		UserID:           userID,
		AccountID:        req.AccountID,
		CategoryID:       req.CategoryID,
		Direction:        req.Direction,
		Date:             date,
		OriginalAmount:   req.OriginalAmount,
		OriginalCurrency: req.OriginalCurrency,
		FinalAmountUSD:   req.OriginalAmount,
		Description:      req.Description,
		CreatedAt:        time.Now().UTC(),
	}

	var resolution *domain.RateResolution
	if req.OriginalCurrency == domain.VES {
		usd, res, err := s.rateSvc.Convert(ctx, req.OriginalAmount, date)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve exchange rate: %w", err)
		}
		rate := res.Value
		movement.RateApplied = &rate
		movement.FinalAmountUSD = usd
		resolution = &res
	}

	if !s.monitor.Online() {
		// Known offline: skip the remote attempt entirely.
		return s.capture(ctx, movement, resolution)
	}

	if err := s.movementRepo.SaveMovement(ctx, movement); err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrDuplicate) {
			// Data-integrity failures are surfaced, not retried.
			return nil, err
		}
		logger.Warn("Remote movement write failed, capturing offline",
			slog.String("movement_id", movement.MovementID),
			slog.String("error", err.Error()))
		return s.capture(ctx, movement, resolution)
	}

	return &domain.MovementWriteResult{Movement: movement, Rate: resolution}, nil
}

// capture enqueues the movement for later sync. Only a failure of the local
// durable store itself is a hard error here: at that point the write has
// nowhere left to live.
func (s *MovementService) capture(ctx context.Context, movement domain.Movement, resolution *domain.RateResolution) (*domain.MovementWriteResult, error) {
	if _, err := s.queue.Enqueue(ctx, domain.OpCreateMovement, movement); err != nil {
		return nil, fmt.Errorf("failed to capture movement offline: %w", err)
	}
	return &domain.MovementWriteResult{Movement: movement, Offline: true, Rate: resolution}, nil
}

// UpdateMovement applies an edit and recomputes the USD-equivalent amount in
// full; no partial update can bypass the recomputation.
func (s *MovementService) UpdateMovement(ctx context.Context, movementID string, req dto.UpdateMovementRequest, userID string) (*domain.Movement, error) {
	if !s.monitor.Online() {
		return nil, fmt.Errorf("%w: movement edits require connectivity", apperrors.ErrOffline)
	}

	existing, err := s.movementRepo.FindMovementByID(ctx, movementID)
	if err != nil {
		return nil, fmt.Errorf("failed to find movement %s: %w", movementID, err)
	}
	if existing.UserID != userID {
		return nil, fmt.Errorf("%w: movement %s", apperrors.ErrNotFound, movementID)
	}

	updated := *existing
	if req.AccountID != nil {
		updated.AccountID = *req.AccountID
	}
	if req.CategoryID != nil {
		updated.CategoryID = req.CategoryID
	}
	if req.Direction != nil {
		updated.Direction = *req.Direction
	}
	if req.Date != nil {
		date, err := domain.ParseDay(*req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, *req.Date)
		}
		updated.Date = date
	}
	if req.OriginalAmount != nil {
		if req.OriginalAmount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: movement amount must be positive", apperrors.ErrValidation)
		}
		updated.OriginalAmount = *req.OriginalAmount
	}
	if req.OriginalCurrency != nil {
		updated.OriginalCurrency = *req.OriginalCurrency
	}
	if req.Description != nil {
		updated.Description = req.Description
	}

	// Recompute the USD equivalent from scratch for the (possibly new) date
	// and currency.
	if updated.OriginalCurrency == domain.VES {
		usd, res, err := s.rateSvc.Convert(ctx, updated.OriginalAmount, updated.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve exchange rate: %w", err)
		}
		rate := res.Value
		updated.RateApplied = &rate
		updated.FinalAmountUSD = usd
	} else {
		updated.RateApplied = nil
		updated.FinalAmountUSD = updated.OriginalAmount
	}

	if err := s.movementRepo.UpdateMovement(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update movement %s: %w", movementID, err)
	}
	return &updated, nil
}

// DeleteMovement removes a movement owned by the user.
func (s *MovementService) DeleteMovement(ctx context.Context, movementID string, userID string) error {
	if !s.monitor.Online() {
		return fmt.Errorf("%w: movement edits require connectivity", apperrors.ErrOffline)
	}

	existing, err := s.movementRepo.FindMovementByID(ctx, movementID)
	if err != nil {
		return fmt.Errorf("failed to find movement %s: %w", movementID, err)
	}
	if existing.UserID != userID {
		return fmt.Errorf("%w: movement %s", apperrors.ErrNotFound, movementID)
	}
	if err := s.movementRepo.DeleteMovement(ctx, movementID); err != nil {
		return fmt.Errorf("failed to delete movement %s: %w", movementID, err)
	}
	return nil
}

// ListMovements retrieves the user's movements, most recent first. On success
// the local snapshot is refreshed; on a remote failure the last-known
// snapshot is served instead, so history stays readable while disconnected.
func (s *MovementService) ListMovements(ctx context.Context, userID string) ([]domain.Movement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	movements, err := s.movementRepo.ListMovements(ctx, userID)
	if err != nil {
		if cached, ok := s.cache.Movements(ctx); ok {
			logger.Warn("Serving movements from local cache", slog.String("error", err.Error()))
			return cached, nil
		}
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	if err := s.cache.PutMovements(ctx, movements); err != nil {
		logger.Warn("Failed to refresh movement cache", slog.String("error", err.Error()))
	}
	return movements, nil
}
