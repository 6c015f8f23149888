package domain

import "time"

// Category labels movements of one direction. Categories are owned per user
// but shared across that user's movements; they are never auto-deleted.
type Category struct {
	CategoryID string            `json:"categoryID"`
	UserID     string            `json:"userID"`
	Name       string            `json:"name"`
	Direction  MovementDirection `json:"direction"`
	Color      string            `json:"color"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// DefaultCategories is the fixed seed set created once per owner on first use.
// IDs and ownership are assigned at seed time.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Salario", Direction: Income, Color: "#10B981"},
		{Name: "Freelance", Direction: Income, Color: "#3B82F6"},
		{Name: "Inversiones", Direction: Income, Color: "#8B5CF6"},
		{Name: "Comida", Direction: Expense, Color: "#EF4444"},
		{Name: "Transporte", Direction: Expense, Color: "#F59E0B"},
		{Name: "Servicios", Direction: Expense, Color: "#EC4899"},
		{Name: "Entretenimiento", Direction: Expense, Color: "#6366F1"},
		{Name: "Salud", Direction: Expense, Color: "#14B8A6"},
	}
}
