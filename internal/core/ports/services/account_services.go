package services

import (
	"context"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	"github.com/bolsillo-app/bolsillo_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for account data.
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account owned by the user.
	GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error)

	// ListAccounts retrieves the user's accounts, falling back to the local
	// reference cache when the remote read fails.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data.
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// SetCurrentBalance performs the inverse edit: given the balance the user
	// actually has today, it recomputes and stores the initial balance so the
	// derived current balance matches. Movements are re-fetched inside the
	// operation; they are never mutated.
	SetCurrentBalance(ctx context.Context, accountID string, desired decimal.Decimal, userID string) (*domain.Account, error)
}

// AccountCalculatorSvc defines derived-balance operations.
type AccountCalculatorSvc interface {
	// AccountBalance derives the current balance of one account in its native
	// currency by replaying all of its movements.
	AccountBalance(ctx context.Context, accountID string, userID string) (decimal.Decimal, error)

	// ConsolidatedBalance sums all account balances in USD, converting VES
	// accounts at the latest known rate (or the shared default, flagged
	// degraded, when no rate exists).
	ConsolidatedBalance(ctx context.Context, userID string) (*domain.ConsolidatedBalance, error)
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountCalculatorSvc
}
