package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bolsillo-app/bolsillo_backend/internal/apperrors"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/ports/local"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/ports/repositories"
	portssvc "github.com/bolsillo-app/bolsillo_backend/internal/core/ports/services"
	"github.com/bolsillo-app/bolsillo_backend/internal/dto"
	"github.com/bolsillo-app/bolsillo_backend/internal/middleware"
	"github.com/bolsillo-app/bolsillo_backend/internal/utils/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountService manages accounts and their derived balances.
type AccountService struct {
	accountRepo  repositories.AccountRepositoryFacade
	movementRepo repositories.MovementReader
	rateSvc      portssvc.ExchangeRateResolverSvc
	cache        local.ReferenceCache
}

// NewAccountService creates a new AccountService.
func NewAccountService(
	accountRepo repositories.AccountRepositoryFacade,
	movementRepo repositories.MovementReader,
	rateSvc portssvc.ExchangeRateResolverSvc,
	cache local.ReferenceCache,
) *AccountService {
	return &AccountService{
		accountRepo:  accountRepo,
		movementRepo: movementRepo,
		rateSvc:      rateSvc,
		cache:        cache,
	}
}

var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

// CreateAccount persists a new account.
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	account := domain.Account{
		AccountID:      uuid.NewString(),
		UserID:         userID,
		Name:           req.Name,
		CurrencyCode:   req.CurrencyCode,
		InitialBalance: req.InitialBalance,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return &account, nil
}

// GetAccountByID retrieves an account owned by the user.
func (s *AccountService) GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	if account.UserID != userID {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return account, nil
}

// ListAccounts retrieves the user's accounts. On success the local reference
// cache is refreshed; on a remote failure the last-known snapshot is served
// instead, so forms keep working while disconnected.
func (s *AccountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccounts(ctx, userID)
	if err != nil {
		if cached, ok := s.cache.Accounts(ctx); ok {
			logger.Warn("Serving accounts from local cache", slog.String("error", err.Error()))
			return cached, nil
		}
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if err := s.cache.PutAccounts(ctx, accounts); err != nil {
		logger.Warn("Failed to refresh account cache", slog.String("error", err.Error()))
	}
	return accounts, nil
}

// AccountBalance derives the current balance of one account in its native
// currency by replaying all of its movements on top of the initial balance.
func (s *AccountService) AccountBalance(ctx context.Context, accountID string, userID string) (decimal.Decimal, error) {
	account, err := s.GetAccountByID(ctx, accountID, userID)
	if err != nil {
		return decimal.Zero, err
	}
	movements, err := s.movementRepo.ListMovementsByAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list movements for account %s: %w", accountID, err)
	}
	return ledger.CurrentBalance(account.InitialBalance, movements), nil
}

// SetCurrentBalance performs the inverse balance edit. The movements are
// re-fetched inside this operation so the algebraic solve works from the same
// ledger state the balance read saw.
func (s *AccountService) SetCurrentBalance(ctx context.Context, accountID string, desired decimal.Decimal, userID string) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}
	movements, err := s.movementRepo.ListMovementsByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements for account %s: %w", accountID, err)
	}

	newInitial := ledger.InitialBalanceFor(desired, movements)
	if err := s.accountRepo.UpdateInitialBalance(ctx, accountID, newInitial); err != nil {
		return nil, fmt.Errorf("failed to update initial balance for account %s: %w", accountID, err)
	}
	account.InitialBalance = newInitial
	return account, nil
}

// ConsolidatedBalance sums all account balances in USD. VES balances convert
// at the latest known rate, not a historical one; with no rate anywhere the
// shared default applies and the result is flagged degraded.
func (s *AccountService) ConsolidatedBalance(ctx context.Context, userID string) (*domain.ConsolidatedBalance, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	result := &domain.ConsolidatedBalance{TotalUSD: decimal.Zero}
	var latest *domain.RateResolution
	for i := range accounts {
		account := &accounts[i]
		movements, err := s.movementRepo.ListMovementsByAccount(ctx, account.AccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to list movements for account %s: %w", account.AccountID, err)
		}
		balance := ledger.CurrentBalance(account.InitialBalance, movements)

		if account.CurrencyCode == domain.VES {
			if latest == nil {
				res, err := s.rateSvc.Latest(ctx)
				if err != nil {
					return nil, err
				}
				latest = &res
			}
			balance = balance.Div(latest.Value)
			if latest.IsDefault {
				result.Degraded = true
			}
		}
		result.TotalUSD = result.TotalUSD.Add(balance)
	}
	return result, nil
}
