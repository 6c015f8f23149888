package dto

import (
	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the data needed to record a daily rate.
type CreateExchangeRateRequest struct {
	Date string          `json:"date" binding:"required,datetime=2006-01-02"`
	Rate decimal.Decimal `json:"rate" binding:"required"`
}

// ExchangeRateResponse defines the data returned for a stored rate.
type ExchangeRateResponse struct {
	Date string          `json:"date"`
	Rate decimal.Decimal `json:"rate"`
}

// RateResolutionResponse defines the data returned when resolving a rate for
// a date. IsFallback/IsDefault flag degraded-mode values the caller must
// surface as a warning.
type RateResolutionResponse struct {
	Value        decimal.Decimal `json:"value"`
	ResolvedDate string          `json:"resolvedDate"`
	IsExact      bool            `json:"isExact"`
	IsFallback   bool            `json:"isFallback"`
	IsDefault    bool            `json:"isDefault"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its response DTO.
func ToExchangeRateResponse(r *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		Date: r.Date.Format(domain.DateFormat),
		Rate: r.Rate,
	}
}

// ToListExchangeRateResponse converts a slice of rates to response DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	res := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		res[i] = ToExchangeRateResponse(&rates[i])
	}
	return res
}

// ToRateResolutionResponse converts a resolution to its response DTO.
func ToRateResolutionResponse(r domain.RateResolution) RateResolutionResponse {
	return RateResolutionResponse{
		Value:        r.Value,
		ResolvedDate: r.ResolvedDate.Format(domain.DateFormat),
		IsExact:      r.IsExact,
		IsFallback:   r.IsFallback,
		IsDefault:    r.IsDefault,
	}
}
