package services

import (
	"context"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	"github.com/bolsillo-app/bolsillo_backend/internal/dto"
)

// MovementWriterSvc defines the offline-resilient write path for movements.
type MovementWriterSvc interface {
	// CreateMovement records a movement. The USD equivalent is computed at
	// write time (resolving a rate for VES amounts). While offline, or on a
	// transient remote failure, the write is captured into the offline queue
	// and the result is flagged Offline. Validation and duplicate failures
	// are returned to the caller and never queued.
	CreateMovement(ctx context.Context, req dto.CreateMovementRequest, userID string) (*domain.MovementWriteResult, error)

	// UpdateMovement applies an edit and recomputes the USD equivalent in
	// full. Requires connectivity; edits are not queued.
	UpdateMovement(ctx context.Context, movementID string, req dto.UpdateMovementRequest, userID string) (*domain.Movement, error)

	// DeleteMovement removes a movement.
	DeleteMovement(ctx context.Context, movementID string, userID string) error
}

// MovementReaderSvc defines read operations for movement data.
type MovementReaderSvc interface {
	// ListMovements retrieves the user's movements, most recent first.
	ListMovements(ctx context.Context, userID string) ([]domain.Movement, error)
}

// MovementSvcFacade combines all movement-related service interfaces.
type MovementSvcFacade interface {
	MovementWriterSvc
	MovementReaderSvc
}
