package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/ports/repositories"
	portssvc "github.com/bolsillo-app/bolsillo_backend/internal/core/ports/services"
	"github.com/bolsillo-app/bolsillo_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// ReportingService computes period analytics over synced movements.
type ReportingService struct {
	movementRepo repositories.MovementReader
	categoryRepo repositories.CategoryReader
}

// NewReportingService creates a new ReportingService.
func NewReportingService(movementRepo repositories.MovementReader, categoryRepo repositories.CategoryReader) *ReportingService {
	return &ReportingService{movementRepo: movementRepo, categoryRepo: categoryRepo}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// MonthlySummary aggregates one calendar month of a user's movements in USD.
// The period is the half-open range [1st of month, 1st of next month);
// time.Date normalizes month overflow, so December rolls into January of the
// next year without special cases.
func (s *ReportingService) MonthlySummary(ctx context.Context, userID string, year int, month int) (*dto.MonthlySummaryResponse, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)

	movements, err := s.movementRepo.ListMovementsByPeriod(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements for period: %w", err)
	}

	categoryNames := make(map[string]string)
	if categories, err := s.categoryRepo.ListCategories(ctx, userID); err == nil {
		for _, c := range categories {
			categoryNames[c.CategoryID] = c.Name
		}
	}

	summary := &dto.MonthlySummaryResponse{
		Month:      from.Format("2006-01"),
		IncomeUSD:  decimal.Zero,
		ExpenseUSD: decimal.Zero,
	}
	incomeByCategory := make(map[string]*dto.CategorySummary)
	expenseByCategory := make(map[string]*dto.CategorySummary)

	for i := range movements {
		m := &movements[i]
		byCategory := incomeByCategory
		if m.Direction == domain.Expense {
			byCategory = expenseByCategory
			summary.ExpenseUSD = summary.ExpenseUSD.Add(m.FinalAmountUSD)
		} else {
			summary.IncomeUSD = summary.IncomeUSD.Add(m.FinalAmountUSD)
		}

		key, name := "", "Sin categoría"
		if m.CategoryID != nil {
			key = *m.CategoryID
			if n, ok := categoryNames[key]; ok {
				name = n
			}
		}
		entry, ok := byCategory[key]
		if !ok {
			entry = &dto.CategorySummary{CategoryID: m.CategoryID, Name: name, TotalUSD: decimal.Zero}
			byCategory[key] = entry
		}
		entry.TotalUSD = entry.TotalUSD.Add(m.FinalAmountUSD)
	}

	summary.Income = collectSummaries(incomeByCategory)
	summary.Expense = collectSummaries(expenseByCategory)
	summary.NetUSD = summary.IncomeUSD.Sub(summary.ExpenseUSD)
	return summary, nil
}

// collectSummaries flattens the per-category map, largest totals first.
func collectSummaries(byCategory map[string]*dto.CategorySummary) []dto.CategorySummary {
	out := make([]dto.CategorySummary, 0, len(byCategory))
	for _, entry := range byCategory {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TotalUSD.GreaterThan(out[j].TotalUSD)
	})
	return out
}
