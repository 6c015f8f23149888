package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockMovementRepo *MockMovementRepository
	mockCategoryRepo *MockCategoryRepository
	service          *services.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewReportingService(suite.mockMovementRepo, suite.mockCategoryRepo)
}

func (suite *ReportingServiceTestSuite) TestMonthlySummary_AggregatesByDirectionAndCategory() {
	ctx := context.Background()
	userID := uuid.NewString()
	foodID := uuid.NewString()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	movements := []domain.Movement{
		{Direction: domain.Income, FinalAmountUSD: decimal.RequireFromString("1000")},
		{Direction: domain.Expense, CategoryID: &foodID, FinalAmountUSD: decimal.RequireFromString("200")},
		{Direction: domain.Expense, CategoryID: &foodID, FinalAmountUSD: decimal.RequireFromString("50")},
		{Direction: domain.Expense, FinalAmountUSD: decimal.RequireFromString("30")},
	}
	categories := []domain.Category{{CategoryID: foodID, UserID: userID, Name: "Comida", Direction: domain.Expense}}

	suite.mockMovementRepo.On("ListMovementsByPeriod", ctx, userID, from, to).Return(movements, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", ctx, userID).Return(categories, nil).Once()

	summary, err := suite.service.MonthlySummary(ctx, userID, 2025, 3)

	suite.NoError(err)
	suite.Equal("2025-03", summary.Month)
	suite.True(summary.IncomeUSD.Equal(decimal.RequireFromString("1000")))
	suite.True(summary.ExpenseUSD.Equal(decimal.RequireFromString("280")))
	suite.True(summary.NetUSD.Equal(decimal.RequireFromString("720")))

	suite.Require().Len(summary.Expense, 2)
	// Largest totals first.
	suite.Equal("Comida", summary.Expense[0].Name)
	suite.True(summary.Expense[0].TotalUSD.Equal(decimal.RequireFromString("250")))
	suite.Equal("Sin categoría", summary.Expense[1].Name)
	suite.True(summary.Expense[1].TotalUSD.Equal(decimal.RequireFromString("30")))
}

func (suite *ReportingServiceTestSuite) TestMonthlySummary_DecemberRollsIntoNextYear() {
	ctx := context.Background()
	userID := uuid.NewString()
	from := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	suite.mockMovementRepo.On("ListMovementsByPeriod", ctx, userID, from, to).Return([]domain.Movement{}, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", ctx, userID).Return([]domain.Category{}, nil).Once()

	summary, err := suite.service.MonthlySummary(ctx, userID, 2025, 12)

	suite.NoError(err)
	suite.Equal("2025-12", summary.Month)
	suite.True(summary.NetUSD.IsZero())
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
