package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a balance-holding entity denominated in one currency.
// The current balance is never stored: it is always derived by replaying the
// account's movements on top of InitialBalance. InitialBalance itself only
// changes through an explicit user edit (see AccountService.SetCurrentBalance).
type Account struct {
	AccountID      string          `json:"accountID"`
	UserID         string          `json:"userID"`
	Name           string          `json:"name"`
	CurrencyCode   Currency        `json:"currencyCode"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ConsolidatedBalance is the USD total across all of a user's accounts.
// Degraded is set when any local-currency account was converted with the
// hardcoded DefaultRate because no rate record exists in the system.
type ConsolidatedBalance struct {
	TotalUSD decimal.Decimal `json:"totalUSD"`
	Degraded bool            `json:"degraded"`
}
