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

// PgxExchangeRateRepository implements the exchange rate repository facade using pgxpool.
type PgxExchangeRateRepository struct {
	db *pgxpool.Pool
}

// NewExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{db: db}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate inserts a new VES/USD rate for its date. One rate per day.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	query := `
		INSERT INTO exchange_rates (rate_date, rate, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, rate.Date, rate.Rate, rate.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("error inserting exchange rate: %w", err)
	}
	return nil
}

// FindRateByDate retrieves the rate recorded for exactly the given day.
func (r *PgxExchangeRateRepository) FindRateByDate(ctx context.Context, date time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT rate_date, rate, created_at
		FROM exchange_rates
		WHERE rate_date = $1
	`
	rate := &domain.ExchangeRate{}
	err := r.db.QueryRow(ctx, query, domain.Day(date)).Scan(&rate.Date, &rate.Rate, &rate.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding exchange rate: %w", err)
	}
	return rate, nil
}

// FindLatestRate retrieves the most recently dated rate on record.
func (r *PgxExchangeRateRepository) FindLatestRate(ctx context.Context) (*domain.ExchangeRate, error) {
	query := `
		SELECT rate_date, rate, created_at
		FROM exchange_rates
		ORDER BY rate_date DESC
		LIMIT 1
	`
	rate := &domain.ExchangeRate{}
	err := r.db.QueryRow(ctx, query).Scan(&rate.Date, &rate.Rate, &rate.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding latest exchange rate: %w", err)
	}
	return rate, nil
}

// ListRates retrieves all recorded rates, newest first.
func (r *PgxExchangeRateRepository) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `
		SELECT rate_date, rate, created_at
		FROM exchange_rates
		ORDER BY rate_date DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing exchange rates: %w", err)
	}
	defer rows.Close()

	var rates []domain.ExchangeRate
	for rows.Next() {
		var rate domain.ExchangeRate
		if err := rows.Scan(&rate.Date, &rate.Rate, &rate.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning exchange rate: %w", err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exchange rates: %w", err)
	}
	return rates, nil
}
