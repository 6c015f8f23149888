package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bolsillo-app/bolsillo_backend/internal/apperrors"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/ports/repositories"
	portssvc "github.com/bolsillo-app/bolsillo_backend/internal/core/ports/services"
	"github.com/bolsillo-app/bolsillo_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// ExchangeRateService resolves historical VES/USD rates and records new ones.
type ExchangeRateService struct {
	rateRepo repositories.ExchangeRateRepositoryFacade
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo repositories.ExchangeRateRepositoryFacade) *ExchangeRateService {
	return &ExchangeRateService{rateRepo: rateRepo}
}

var _ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)

// Resolve finds the applicable rate for a date: exact lookup first, then a
// backward walk of up to RateSearchWindowDays, then the globally most recent
// rate, then the hardcoded default. Each step degrades the result's flags;
// none of them fails the computation.
func (s *ExchangeRateService) Resolve(ctx context.Context, date time.Time) (domain.RateResolution, error) {
	day := domain.Day(date)

	for attempt := 0; attempt < domain.RateSearchWindowDays; attempt++ {
		if err := ctx.Err(); err != nil {
			return domain.RateResolution{}, err
		}
		searchDay := day.AddDate(0, 0, -attempt)
		rate, err := s.rateRepo.FindRateByDate(ctx, searchDay)
		if err == nil {
			return domain.RateResolution{
				Value:        rate.Rate,
				ResolvedDate: rate.Date,
				IsExact:      attempt == 0,
			}, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			// Transient repository failure: abandon the walk and degrade.
			break
		}
	}

	latest, err := s.rateRepo.FindLatestRate(ctx)
	if err == nil {
		return domain.RateResolution{
			Value:        latest.Rate,
			ResolvedDate: latest.Date,
			IsFallback:   true,
		}, nil
	}

	return domain.RateResolution{
		Value:        domain.DefaultRate,
		ResolvedDate: day,
		IsFallback:   true,
		IsDefault:    true,
	}, nil
}

// Convert computes the USD equivalent of a VES amount at the given date.
// Resolved rate values are invariantly positive, so the division is safe.
func (s *ExchangeRateService) Convert(ctx context.Context, vesAmount decimal.Decimal, date time.Time) (decimal.Decimal, domain.RateResolution, error) {
	res, err := s.Resolve(ctx, date)
	if err != nil {
		return decimal.Zero, domain.RateResolution{}, err
	}
	return vesAmount.Div(res.Value), res, nil
}

// Latest returns the most recent recorded rate, or the shared default flagged
// IsDefault when the system holds no rates at all.
func (s *ExchangeRateService) Latest(ctx context.Context) (domain.RateResolution, error) {
	latest, err := s.rateRepo.FindLatestRate(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.RateResolution{
				Value:        domain.DefaultRate,
				ResolvedDate: domain.Day(time.Now()),
				IsFallback:   true,
				IsDefault:    true,
			}, nil
		}
		return domain.RateResolution{}, fmt.Errorf("failed to get latest rate: %w", err)
	}
	return domain.RateResolution{
		Value:        latest.Rate,
		ResolvedDate: latest.Date,
		IsExact:      true,
	}, nil
}

// CreateRate records the rate for a calendar day.
func (s *ExchangeRateService) CreateRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	date, err := domain.ParseDay(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	rate := domain.ExchangeRate{
		Date:      date,
		Rate:      req.Rate,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: a rate for %s already exists", apperrors.ErrDuplicate, req.Date)
		}
		return nil, fmt.Errorf("failed to create exchange rate: %w", err)
	}
	return &rate, nil
}

// ListRates retrieves all recorded rates, most recent first.
func (s *ExchangeRateService) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}
	return rates, nil
}
