package repositories

import (
	"context"
	"time"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
)

// MovementReader defines read operations for movement data.
type MovementReader interface {
	// FindMovementByID retrieves a single movement.
	FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error)

	// ListMovements retrieves all movements owned by a user, most recent date first.
	ListMovements(ctx context.Context, userID string) ([]domain.Movement, error)

	// ListMovementsByAccount retrieves all movements of one account.
	ListMovementsByAccount(ctx context.Context, accountID string) ([]domain.Movement, error)

	// ListMovementsByPeriod retrieves a user's movements with from <= date < to.
	ListMovementsByPeriod(ctx context.Context, userID string, from, to time.Time) ([]domain.Movement, error)
}

// MovementWriter defines write operations for movement data.
type MovementWriter interface {
	// SaveMovement persists a new movement.
	SaveMovement(ctx context.Context, movement domain.Movement) error

	// UpdateMovement overwrites an existing movement wholesale. Partial
	// updates are not offered so the USD-equivalent field is always
	// recomputed by the caller.
	UpdateMovement(ctx context.Context, movement domain.Movement) error

	// DeleteMovement removes a movement by id.
	DeleteMovement(ctx context.Context, movementID string) error
}

// MovementRepositoryFacade combines all movement repository interfaces.
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
}
