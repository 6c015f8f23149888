package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bolsillo-app/bolsillo_backend/internal/apperrors"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	portsrepo "github.com/bolsillo-app/bolsillo_backend/internal/core/ports/repositories"
)

// PgxMovementRepository implements the movement repository facade using pgxpool.
type PgxMovementRepository struct {
	db *pgxpool.Pool
}

// NewMovementRepository creates a new PgxMovementRepository.
func NewMovementRepository(db *pgxpool.Pool) *PgxMovementRepository {
	return &PgxMovementRepository{db: db}
}

var _ portsrepo.MovementRepositoryFacade = (*PgxMovementRepository)(nil)

const movementColumns = `
	movement_id, user_id, account_id, category_id, direction, movement_date,
	original_amount, original_currency, rate_applied, final_amount_usd,
	description, created_at
`

func scanMovement(row pgx.Row) (domain.Movement, error) {
	var m domain.Movement
	err := row.Scan(
		&m.MovementID, &m.UserID, &m.AccountID, &m.CategoryID, &m.Direction, &m.Date,
		&m.OriginalAmount, &m.OriginalCurrency, &m.RateApplied, &m.FinalAmountUSD,
		&m.Description, &m.CreatedAt,
	)
	return m, err
}

// SaveMovement inserts a new movement. Movement ids are client-assigned, so a
// replay of the same operation surfaces as ErrDuplicate.
func (r *PgxMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) error {
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		movement.MovementID, movement.UserID, movement.AccountID, movement.CategoryID,
		movement.Direction, movement.Date, movement.OriginalAmount, movement.OriginalCurrency,
		movement.RateApplied, movement.FinalAmountUSD, movement.Description, movement.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("error inserting movement: %w", err)
	}
	return nil
}

// FindMovementByID retrieves a movement by its id.
func (r *PgxMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE movement_id = $1`
	m, err := scanMovement(r.db.QueryRow(ctx, query, movementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding movement: %w", err)
	}
	return &m, nil
}

// ListMovements retrieves all movements for a user, newest first.
func (r *PgxMovementRepository) ListMovements(ctx context.Context, userID string) ([]domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE user_id = $1
		ORDER BY movement_date DESC, created_at DESC
	`
	return r.list(ctx, query, userID)
}

// ListMovementsByAccount retrieves all movements touching one account.
func (r *PgxMovementRepository) ListMovementsByAccount(ctx context.Context, accountID string) ([]domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE account_id = $1
		ORDER BY movement_date DESC, created_at DESC
	`
	return r.list(ctx, query, accountID)
}

// ListMovementsByPeriod retrieves a user's movements with date in [from, to).
func (r *PgxMovementRepository) ListMovementsByPeriod(ctx context.Context, userID string, from, to time.Time) ([]domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE user_id = $1 AND movement_date >= $2 AND movement_date < $3
		ORDER BY movement_date DESC, created_at DESC
	`
	return r.list(ctx, query, userID, from, to)
}

// UpdateMovement rewrites every mutable field of a movement.
func (r *PgxMovementRepository) UpdateMovement(ctx context.Context, movement domain.Movement) error {
	query := `
		UPDATE movements SET
			account_id = $2, category_id = $3, direction = $4, movement_date = $5,
			original_amount = $6, original_currency = $7, rate_applied = $8,
			final_amount_usd = $9, description = $10
		WHERE movement_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		movement.MovementID, movement.AccountID, movement.CategoryID, movement.Direction,
		movement.Date, movement.OriginalAmount, movement.OriginalCurrency,
		movement.RateApplied, movement.FinalAmountUSD, movement.Description,
	)
	if err != nil {
		return fmt.Errorf("error updating movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteMovement removes a movement by id.
func (r *PgxMovementRepository) DeleteMovement(ctx context.Context, movementID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM movements WHERE movement_id = $1`, movementID)
	if err != nil {
		return fmt.Errorf("error deleting movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMovementRepository) list(ctx context.Context, query string, args ...any) ([]domain.Movement, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing movements: %w", err)
	}
	defer rows.Close()

	var movements []domain.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning movement: %w", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movements: %w", err)
	}
	return movements, nil
}
