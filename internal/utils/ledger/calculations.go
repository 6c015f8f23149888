// Package ledger holds the pure balance math shared by services.
// Balances are always computed in the account's native currency from the
// movements' original amounts; USD equivalents play no part here.
package ledger

import (
	"time"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Contribution returns the signed effect of a movement on its account's
// balance: +OriginalAmount for income, -OriginalAmount for expense.
func Contribution(m domain.Movement) decimal.Decimal {
	if m.Direction == domain.Income {
		return m.OriginalAmount
	}
	return m.OriginalAmount.Neg()
}

// CurrentBalance returns initial plus the sum of all movement contributions.
// The sum is commutative; input ordering does not matter.
func CurrentBalance(initial decimal.Decimal, movements []domain.Movement) decimal.Decimal {
	sum := initial
	for _, m := range movements {
		sum = sum.Add(Contribution(m))
	}
	return sum
}

// BalanceAsOf returns the point-in-time balance: only movements dated on or
// before asOf contribute. asOf is compared at day granularity.
func BalanceAsOf(initial decimal.Decimal, movements []domain.Movement, asOf time.Time) decimal.Decimal {
	day := domain.Day(asOf)
	sum := initial
	for _, m := range movements {
		if m.Date.After(day) {
			continue
		}
		sum = sum.Add(Contribution(m))
	}
	return sum
}

// InitialBalanceFor solves the inverse edit algebraically: the stored initial
// balance that makes CurrentBalance equal desiredCurrent given the existing
// movements. Movements are never mutated.
func InitialBalanceFor(desiredCurrent decimal.Decimal, movements []domain.Movement) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		total = total.Add(Contribution(m))
	}
	return desiredCurrent.Sub(total)
}
