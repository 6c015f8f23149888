package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/ports/local"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/ports/repositories"
	portssvc "github.com/bolsillo-app/bolsillo_backend/internal/core/ports/services"
	"github.com/bolsillo-app/bolsillo_backend/internal/middleware"
	"github.com/google/uuid"
)

// CategoryService manages the per-owner category reference data.
type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryFacade
	cache        local.ReferenceCache
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repositories.CategoryRepositoryFacade, cache local.ReferenceCache) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, cache: cache}
}

var _ portssvc.CategorySvcFacade = (*CategoryService)(nil)

// ListCategories retrieves the user's categories, seeding the fixed default
// set on first use. Categories are never auto-deleted. On a remote failure
// the last-known cached snapshot is served instead.
func (s *CategoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	categories, err := s.categoryRepo.ListCategories(ctx, userID)
	if err != nil {
		if cached, ok := s.cache.Categories(ctx); ok {
			logger.Warn("Serving categories from local cache", slog.String("error", err.Error()))
			return cached, nil
		}
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	if len(categories) == 0 {
		categories, err = s.seedDefaults(ctx, userID)
		if err != nil {
			return nil, err
		}
		logger.Info("Seeded default categories", slog.String("user_id", userID), slog.Int("count", len(categories)))
	}

	if err := s.cache.PutCategories(ctx, categories); err != nil {
		logger.Warn("Failed to refresh category cache", slog.String("error", err.Error()))
	}
	return categories, nil
}

func (s *CategoryService) seedDefaults(ctx context.Context, userID string) ([]domain.Category, error) {
	now := time.Now().UTC()
	seed := domain.DefaultCategories()
	for i := range seed {
		seed[i].CategoryID = uuid.NewString()
		seed[i].UserID = userID
		seed[i].CreatedAt = now
	}
	if err := s.categoryRepo.SaveCategories(ctx, seed); err != nil {
		return nil, fmt.Errorf("failed to seed default categories: %w", err)
	}
	return seed, nil
}
