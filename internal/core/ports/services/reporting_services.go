package services

import (
	"context"

	"github.com/bolsillo-app/bolsillo_backend/internal/dto"
)

// ReportingSvcFacade computes period analytics over synced movements.
type ReportingSvcFacade interface {
	// MonthlySummary aggregates one calendar month of a user's movements in
	// USD, broken down by direction and category. The period is the
	// half-open range [1st of month, 1st of next month), computed safely
	// across year boundaries.
	MonthlySummary(ctx context.Context, userID string, year int, month int) (*dto.MonthlySummaryResponse, error)
}
