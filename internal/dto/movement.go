package dto

import (
	"time"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMovementRequest defines the data needed to record a movement.
// Date is a calendar day with no time component.
type CreateMovementRequest struct {
	AccountID        string                   `json:"accountID" binding:"required"`
	CategoryID       *string                  `json:"categoryID"`
	Direction        domain.MovementDirection `json:"direction" binding:"required,movementdirection"`
	Date             string                   `json:"date" binding:"required,datetime=2006-01-02"`
	OriginalAmount   decimal.Decimal          `json:"originalAmount" binding:"required"`
	OriginalCurrency domain.Currency          `json:"originalCurrency" binding:"required,supportedcurrency"`
	Description      *string                  `json:"description"`
}

// UpdateMovementRequest defines the fields an edit may change. Pointers
// distinguish omitted fields from zero values. Any change that affects the
// USD equivalent triggers a full recomputation in the service.
type UpdateMovementRequest struct {
	AccountID        *string                   `json:"accountID"`
	CategoryID       *string                   `json:"categoryID"`
	Direction        *domain.MovementDirection `json:"direction" binding:"omitempty,movementdirection"`
	Date             *string                   `json:"date" binding:"omitempty,datetime=2006-01-02"`
	OriginalAmount   *decimal.Decimal          `json:"originalAmount"`
	OriginalCurrency *domain.Currency          `json:"originalCurrency" binding:"omitempty,supportedcurrency"`
	Description      *string                   `json:"description"`
}

// MovementResponse defines the data returned for a movement.
type MovementResponse struct {
	MovementID       string                   `json:"movementID"`
	AccountID        string                   `json:"accountID"`
	CategoryID       *string                  `json:"categoryID"`
	Direction        domain.MovementDirection `json:"direction"`
	Date             string                   `json:"date"`
	OriginalAmount   decimal.Decimal          `json:"originalAmount"`
	OriginalCurrency domain.Currency          `json:"originalCurrency"`
	RateApplied      *decimal.Decimal         `json:"rateApplied"`
	FinalAmountUSD   decimal.Decimal          `json:"finalAmountUSD"`
	Description      *string                  `json:"description"`
	CreatedAt        time.Time                `json:"createdAt"`
}

// MovementWriteResponse wraps a movement write outcome. Offline marks a write
// captured into the local queue instead of reaching the remote repository;
// Degraded marks a VES conversion that used a fallback or default rate.
type MovementWriteResponse struct {
	Movement MovementResponse `json:"movement"`
	Offline  bool             `json:"offline"`
	Degraded bool             `json:"degraded"`
}

// ToMovementResponse converts a domain.Movement to its response DTO.
func ToMovementResponse(m *domain.Movement) MovementResponse {
	return MovementResponse{
		MovementID:       m.MovementID,
		AccountID:        m.AccountID,
		CategoryID:       m.CategoryID,
		Direction:        m.Direction,
		Date:             m.Date.Format(domain.DateFormat),
		OriginalAmount:   m.OriginalAmount,
		OriginalCurrency: m.OriginalCurrency,
		RateApplied:      m.RateApplied,
		FinalAmountUSD:   m.FinalAmountUSD,
		Description:      m.Description,
		CreatedAt:        m.CreatedAt,
	}
}

// ToMovementWriteResponse converts a write result to its response DTO.
func ToMovementWriteResponse(res *domain.MovementWriteResult) MovementWriteResponse {
	degraded := res.Rate != nil && (res.Rate.IsFallback || res.Rate.IsDefault)
	return MovementWriteResponse{
		Movement: ToMovementResponse(&res.Movement),
		Offline:  res.Offline,
		Degraded: degraded,
	}
}

// ToListMovementResponse converts a slice of movements to response DTOs.
func ToListMovementResponse(movements []domain.Movement) []MovementResponse {
	res := make([]MovementResponse, len(movements))
	for i := range movements {
		res[i] = ToMovementResponse(&movements[i])
	}
	return res
}
