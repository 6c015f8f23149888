package repositories

import (
	"context"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
)

// CategoryReader defines read operations for category data.
type CategoryReader interface {
	// ListCategories retrieves all categories owned by a user, sorted by name.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data.
type CategoryWriter interface {
	// SaveCategories persists a batch of categories (used for the default seed).
	SaveCategories(ctx context.Context, categories []domain.Category) error
}

// CategoryRepositoryFacade combines all category repository interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
