package dto

import (
	"time"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// InitialBalance is a signed decimal; debts start negative.
type CreateAccountRequest struct {
	Name           string          `json:"name" binding:"required"`
	CurrencyCode   domain.Currency `json:"currencyCode" binding:"required,supportedcurrency"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

// SetBalanceRequest carries the "balance I actually have today" value for the
// inverse initial-balance edit.
type SetBalanceRequest struct {
	CurrentBalance decimal.Decimal `json:"currentBalance" binding:"required"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	CurrencyCode   domain.Currency `json:"currencyCode"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// AccountBalanceResponse defines the data returned for a derived balance query.
type AccountBalanceResponse struct {
	AccountID    string          `json:"accountID"`
	CurrencyCode domain.Currency `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
}

// ConsolidatedBalanceResponse is the USD total across all accounts.
type ConsolidatedBalanceResponse struct {
	TotalUSD decimal.Decimal `json:"totalUSD"`
	Degraded bool            `json:"degraded"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		CurrencyCode:   acc.CurrencyCode,
		InitialBalance: acc.InitialBalance,
		CreatedAt:      acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of accounts to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
