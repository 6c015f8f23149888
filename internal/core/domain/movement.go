package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementDirection distinguishes income from expense movements.
type MovementDirection string

const (
	Income  MovementDirection = "income"
	Expense MovementDirection = "expense"
)

// Movement is a single income or expense ledger entry.
//
// Invariant: FinalAmountUSD equals OriginalAmount when OriginalCurrency is
// USD, and OriginalAmount divided by *RateApplied when it is VES. Edits go
// through MovementService so the USD equivalent is always recomputed; nothing
// patches around it.
type Movement struct {
	MovementID       string            `json:"movementID"`
	UserID           string            `json:"userID"`
	AccountID        string            `json:"accountID"`
	CategoryID       *string           `json:"categoryID"`
	Direction        MovementDirection `json:"direction"`
	Date             time.Time         `json:"date"` // day granularity, midnight UTC
	OriginalAmount   decimal.Decimal   `json:"originalAmount"`
	OriginalCurrency Currency          `json:"originalCurrency"`
	RateApplied      *decimal.Decimal  `json:"rateApplied"` // set iff OriginalCurrency is VES
	FinalAmountUSD   decimal.Decimal   `json:"finalAmountUSD"`
	Description      *string           `json:"description"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// MovementWriteResult is the outcome of a movement write request.
// Offline marks a write that never reached the remote repository and was
// captured into the offline queue instead; callers surface it as "pending
// sync" rather than a normal success. Rate carries the resolution applied for
// VES movements so degraded (fallback/default) rates can be flagged to the user.
type MovementWriteResult struct {
	Movement Movement        `json:"movement"`
	Offline  bool            `json:"offline"`
	Rate     *RateResolution `json:"rate,omitempty"`
}
