package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bolsillo-app/bolsillo_backend/internal/apperrors"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/services"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockMovementRepo *MockMovementRepository
	mockRateRepo     *MockExchangeRateRepository
	mockCache        *MockReferenceCache
	service          *services.AccountService
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockCache = new(MockReferenceCache)

	rateService := services.NewExchangeRateService(suite.mockRateRepo)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockMovementRepo, rateService, suite.mockCache)
}

func account(userID string, currency domain.Currency, initial string) *domain.Account {
	return &domain.Account{
		AccountID:      uuid.NewString(),
		UserID:         userID,
		Name:           "Cuenta",
		CurrencyCode:   currency,
		InitialBalance: decimal.RequireFromString(initial),
		CreatedAt:      time.Now().UTC(),
	}
}

func expense(accountID, amount string) domain.Movement {
	return domain.Movement{
		MovementID:       uuid.NewString(),
		AccountID:        accountID,
		Direction:        domain.Expense,
		Date:             day("2025-03-10"),
		OriginalAmount:   decimal.RequireFromString(amount),
		OriginalCurrency: domain.USD,
		FinalAmountUSD:   decimal.RequireFromString(amount),
	}
}

func income(accountID, amount string) domain.Movement {
	m := expense(accountID, amount)
	m.Direction = domain.Income
	return m
}

func (suite *AccountServiceTestSuite) TestAccountBalance_ReplaysMovements() {
	ctx := context.Background()
	userID := uuid.NewString()
	acc := account(userID, domain.USD, "100")
	movements := []domain.Movement{income(acc.AccountID, "50"), expense(acc.AccountID, "30")}

	suite.mockAccountRepo.On("FindAccountByID", ctx, acc.AccountID).Return(acc, nil).Once()
	suite.mockMovementRepo.On("ListMovementsByAccount", ctx, acc.AccountID).Return(movements, nil).Once()

	balance, err := suite.service.AccountBalance(ctx, acc.AccountID, userID)

	suite.NoError(err)
	suite.True(balance.Equal(decimal.RequireFromString("120")))
}

func (suite *AccountServiceTestSuite) TestSetCurrentBalance_SolvesInitialAlgebraically() {
	ctx := context.Background()
	userID := uuid.NewString()
	acc := account(userID, domain.USD, "100")
	// Net contribution is +20, so hitting a current balance of 500 requires
	// an initial balance of 480.
	movements := []domain.Movement{income(acc.AccountID, "50"), expense(acc.AccountID, "30")}

	suite.mockAccountRepo.On("FindAccountByID", ctx, acc.AccountID).Return(acc, nil).Once()
	suite.mockMovementRepo.On("ListMovementsByAccount", ctx, acc.AccountID).Return(movements, nil).Once()
	suite.mockAccountRepo.On("UpdateInitialBalance", ctx, acc.AccountID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString("480"))
	})).Return(nil).Once()

	updated, err := suite.service.SetCurrentBalance(ctx, acc.AccountID, decimal.RequireFromString("500"), userID)

	suite.NoError(err)
	suite.True(updated.InitialBalance.Equal(decimal.RequireFromString("480")))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_OtherUsersAccountIsNotFound() {
	ctx := context.Background()
	acc := account(uuid.NewString(), domain.USD, "0")

	suite.mockAccountRepo.On("FindAccountByID", ctx, acc.AccountID).Return(acc, nil).Once()

	_, err := suite.service.GetAccountByID(ctx, acc.AccountID, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestListAccounts_RemoteFailureServesCache() {
	ctx := context.Background()
	userID := uuid.NewString()
	cached := []domain.Account{*account(userID, domain.USD, "10")}

	suite.mockAccountRepo.On("ListAccounts", ctx, userID).Return(nil, errors.New("network down")).Once()
	suite.mockCache.On("Accounts", ctx).Return(cached, true).Once()

	accounts, err := suite.service.ListAccounts(ctx, userID)

	suite.NoError(err)
	suite.Equal(cached, accounts)
}

func (suite *AccountServiceTestSuite) TestListAccounts_SuccessRefreshesCache() {
	ctx := context.Background()
	userID := uuid.NewString()
	remote := []domain.Account{*account(userID, domain.USD, "10")}

	suite.mockAccountRepo.On("ListAccounts", ctx, userID).Return(remote, nil).Once()
	suite.mockCache.On("PutAccounts", ctx, remote).Return(nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, userID)

	suite.NoError(err)
	suite.Equal(remote, accounts)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestConsolidatedBalance_ConvertsVESAtLatestRate() {
	ctx := context.Background()
	userID := uuid.NewString()
	usdAcc := *account(userID, domain.USD, "100")
	vesAcc := *account(userID, domain.VES, "60000")
	latest := &domain.ExchangeRate{Date: day("2025-03-10"), Rate: decimal.RequireFromString("600")}

	suite.mockAccountRepo.On("ListAccounts", ctx, userID).Return([]domain.Account{usdAcc, vesAcc}, nil).Once()
	suite.mockMovementRepo.On("ListMovementsByAccount", ctx, usdAcc.AccountID).Return([]domain.Movement{}, nil).Once()
	suite.mockMovementRepo.On("ListMovementsByAccount", ctx, vesAcc.AccountID).Return([]domain.Movement{}, nil).Once()
	suite.mockRateRepo.On("FindLatestRate", ctx).Return(latest, nil).Once()

	consolidated, err := suite.service.ConsolidatedBalance(ctx, userID)

	suite.NoError(err)
	suite.True(consolidated.TotalUSD.Equal(decimal.RequireFromString("200")))
	suite.False(consolidated.Degraded)
}

func (suite *AccountServiceTestSuite) TestConsolidatedBalance_DefaultRateFlagsDegraded() {
	ctx := context.Background()
	userID := uuid.NewString()
	vesAcc := *account(userID, domain.VES, "587.89")

	suite.mockAccountRepo.On("ListAccounts", ctx, userID).Return([]domain.Account{vesAcc}, nil).Once()
	suite.mockMovementRepo.On("ListMovementsByAccount", ctx, vesAcc.AccountID).Return([]domain.Movement{}, nil).Once()
	suite.mockRateRepo.On("FindLatestRate", ctx).Return(nil, apperrors.ErrNotFound).Once()

	consolidated, err := suite.service.ConsolidatedBalance(ctx, userID)

	suite.NoError(err)
	suite.True(consolidated.Degraded)
	suite.True(consolidated.TotalUSD.Equal(decimal.RequireFromString("1")))
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
