package dto

import "github.com/shopspring/decimal"

// MonthlySummaryParams defines the query parameters for a monthly report.
type MonthlySummaryParams struct {
	Year  int `form:"year" binding:"required,min=2000,max=2200"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// CategorySummary is the USD total for one category within the period.
type CategorySummary struct {
	CategoryID *string         `json:"categoryID"`
	Name       string          `json:"name"`
	TotalUSD   decimal.Decimal `json:"totalUSD"`
}

// MonthlySummaryResponse aggregates one calendar month of movements in USD.
type MonthlySummaryResponse struct {
	Month      string            `json:"month"` // YYYY-MM
	IncomeUSD  decimal.Decimal   `json:"incomeUSD"`
	ExpenseUSD decimal.Decimal   `json:"expenseUSD"`
	NetUSD     decimal.Decimal   `json:"netUSD"`
	Income     []CategorySummary `json:"income"`
	Expense    []CategorySummary `json:"expense"`
}
