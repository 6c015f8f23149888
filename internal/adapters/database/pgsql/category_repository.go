package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	portsrepo "github.com/bolsillo-app/bolsillo_backend/internal/core/ports/repositories"
)

// PgxCategoryRepository implements the category repository facade using pgxpool.
type PgxCategoryRepository struct {
	db *pgxpool.Pool
}

// NewCategoryRepository creates a new PgxCategoryRepository.
func NewCategoryRepository(db *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{db: db}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// ListCategories retrieves a user's categories, income before expense, then by name.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	query := `
		SELECT category_id, user_id, name, direction, color, created_at
		FROM categories
		WHERE user_id = $1
		ORDER BY direction ASC, name ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.CategoryID, &c.UserID, &c.Name, &c.Direction, &c.Color, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}

// SaveCategories inserts a batch of categories in one round trip. Used to seed
// the default set for a new user.
func (r *PgxCategoryRepository) SaveCategories(ctx context.Context, categories []domain.Category) error {
	if len(categories) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO categories (category_id, user_id, name, direction, color, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (category_id) DO NOTHING
	`
	for _, c := range categories {
		batch.Queue(query, c.CategoryID, c.UserID, c.Name, c.Direction, c.Color, c.CreatedAt)
	}
	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range categories {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("error inserting category: %w", err)
		}
	}
	return nil
}
