package services

import (
	"context"
	"time"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	"github.com/bolsillo-app/bolsillo_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// ExchangeRateResolverSvc finds the applicable rate for a date using the
// degrade-gracefully policy: exact match, then a bounded backward walk, then
// the globally latest rate, then the hardcoded default. It never hard-fails a
// financial computation for want of a rate.
type ExchangeRateResolverSvc interface {
	// Resolve returns the applicable rate for the given day with flags
	// describing how authoritative it is.
	Resolve(ctx context.Context, date time.Time) (domain.RateResolution, error)

	// Convert divides a VES amount by the resolved rate for the date,
	// returning the USD amount alongside the resolution used.
	Convert(ctx context.Context, vesAmount decimal.Decimal, date time.Time) (decimal.Decimal, domain.RateResolution, error)

	// Latest returns the globally most recent rate, or the shared default
	// flagged IsDefault when no rate exists at all.
	Latest(ctx context.Context) (domain.RateResolution, error)
}

// ExchangeRateWriterSvc defines write operations for rate records.
type ExchangeRateWriterSvc interface {
	// CreateRate records the rate for a day. Rates must be positive; a second
	// rate for the same day fails with apperrors.ErrDuplicate.
	CreateRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)
}

// ExchangeRateReaderSvc defines read operations for rate records.
type ExchangeRateReaderSvc interface {
	// ListRates retrieves all recorded rates, most recent first.
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange-rate service interfaces.
type ExchangeRateSvcFacade interface {
	ExchangeRateResolverSvc
	ExchangeRateWriterSvc
	ExchangeRateReaderSvc
}
