package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
)

// --- Mock ExchangeRateRepository ---

type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindRateByDate(ctx context.Context, date time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindLatestRate(ctx context.Context) (*domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Mock MovementRepository ---

type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	args := m.Called(ctx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) ListMovements(ctx context.Context, userID string) ([]domain.Movement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) ListMovementsByAccount(ctx context.Context, accountID string) ([]domain.Movement, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) ListMovementsByPeriod(ctx context.Context, userID string, from, to time.Time) ([]domain.Movement, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) UpdateMovement(ctx context.Context, movement domain.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) DeleteMovement(ctx context.Context, movementID string) error {
	args := m.Called(ctx, movementID)
	return args.Error(0)
}

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateInitialBalance(ctx context.Context, accountID string, initial decimal.Decimal) error {
	args := m.Called(ctx, accountID, initial)
	return args.Error(0)
}

// --- Mock CategoryRepository ---

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategories(ctx context.Context, categories []domain.Category) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}

// --- Mock OfflineQueue ---

type MockOfflineQueue struct {
	mock.Mock
}

func (m *MockOfflineQueue) Enqueue(ctx context.Context, kind domain.OperationKind, payload domain.Movement) (domain.OfflineOperation, error) {
	args := m.Called(ctx, kind, payload)
	return args.Get(0).(domain.OfflineOperation), args.Error(1)
}

func (m *MockOfflineQueue) List(ctx context.Context) ([]domain.OfflineOperation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OfflineOperation), args.Error(1)
}

func (m *MockOfflineQueue) Remove(ctx context.Context, operationID string) error {
	args := m.Called(ctx, operationID)
	return args.Error(0)
}

func (m *MockOfflineQueue) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock ReferenceCache ---

type MockReferenceCache struct {
	mock.Mock
}

func (m *MockReferenceCache) PutAccounts(ctx context.Context, accounts []domain.Account) error {
	args := m.Called(ctx, accounts)
	return args.Error(0)
}

func (m *MockReferenceCache) Accounts(ctx context.Context) ([]domain.Account, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]domain.Account), args.Bool(1)
}

func (m *MockReferenceCache) PutCategories(ctx context.Context, categories []domain.Category) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}

func (m *MockReferenceCache) Categories(ctx context.Context) ([]domain.Category, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]domain.Category), args.Bool(1)
}

func (m *MockReferenceCache) PutMovements(ctx context.Context, movements []domain.Movement) error {
	args := m.Called(ctx, movements)
	return args.Error(0)
}

func (m *MockReferenceCache) Movements(ctx context.Context) ([]domain.Movement, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]domain.Movement), args.Bool(1)
}

// --- Mock PINVault ---

type MockPINVault struct {
	mock.Mock
}

func (m *MockPINVault) SavePINHash(ctx context.Context, hash string) error {
	args := m.Called(ctx, hash)
	return args.Error(0)
}

func (m *MockPINVault) PINHash(ctx context.Context) (string, bool, error) {
	args := m.Called(ctx)
	return args.String(0), args.Bool(1), args.Error(2)
}

// --- Stub ConnectivityMonitor ---

// stubMonitor is a fixed-state monitor; movement and sync tests only need to
// pin the online flag.
type stubMonitor struct {
	online bool
}

func (s *stubMonitor) Online() bool { return s.online }

func (s *stubMonitor) Subscribe(fn func(online bool)) (unsubscribe func()) {
	return func() {}
}
