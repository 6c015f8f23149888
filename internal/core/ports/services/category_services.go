package services

import (
	"context"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
)

// CategorySvcFacade manages the per-owner category reference data.
type CategorySvcFacade interface {
	// ListCategories retrieves the user's categories, seeding the fixed
	// default set on first use. Falls back to the local reference cache when
	// the remote read fails.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
}
