package repositories

import (
	"context"
	"time"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data.
type ExchangeRateReader interface {
	// FindRateByDate retrieves the rate recorded for exactly the given day.
	// Returns apperrors.ErrNotFound when no rate exists for that day.
	FindRateByDate(ctx context.Context, date time.Time) (*domain.ExchangeRate, error)

	// FindLatestRate retrieves the globally most recent rate by date.
	// Returns apperrors.ErrNotFound when no rate exists at all.
	FindLatestRate(ctx context.Context) (*domain.ExchangeRate, error)

	// ListRates retrieves all rates, most recent date first.
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data.
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a new rate. The date is a unique key; saving a
	// second rate for the same day returns apperrors.ErrDuplicate.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate repository interfaces.
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
