package dto

import "github.com/bolsillo-app/bolsillo_backend/internal/core/domain"

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string                   `json:"categoryID"`
	Name       string                   `json:"name"`
	Direction  domain.MovementDirection `json:"direction"`
	Color      string                   `json:"color"`
}

// ToListCategoryResponse converts a slice of categories to response DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = CategoryResponse{
			CategoryID: c.CategoryID,
			Name:       c.Name,
			Direction:  c.Direction,
			Color:      c.Color,
		}
	}
	return res
}
