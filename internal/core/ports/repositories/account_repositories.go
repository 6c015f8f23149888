package repositories

import (
	"context"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a single account.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts owned by a user, newest first.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateInitialBalance overwrites the stored initial balance. This is the
	// only mutation movement activity never performs; it backs the explicit
	// inverse balance edit.
	UpdateInitialBalance(ctx context.Context, accountID string, initial decimal.Decimal) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
