package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultRate is the degraded-mode exchange rate (VES per USD) used only when
// no rate record exists anywhere in the system. It is shared by the rate
// resolver's last-resort step and the consolidated-balance conversion so the
// two paths cannot drift apart. Results computed with it are flagged, never
// presented as authoritative.
var DefaultRate = decimal.RequireFromString("587.89")

// RateSearchWindowDays bounds the resolver's backward day-by-day search
// before it falls back to the globally most recent rate.
const RateSearchWindowDays = 30

// ExchangeRate is a (date, value) pair: VES units per one USD on that day.
// The date is a unique key; rates are global, not owned per user.
type ExchangeRate struct {
	Date      time.Time       `json:"date"` // day granularity, midnight UTC
	Rate      decimal.Decimal `json:"rate"` // always positive
	CreatedAt time.Time       `json:"createdAt"`
}

// RateResolution is the result of resolving a rate for a target date.
// IsExact: a rate existed for the requested day. IsFallback: the value came
// from outside the bounded backward window (globally latest rate or the
// hardcoded default). IsDefault: no rate exists at all and DefaultRate was
// used. The resolver never fails outright; the flags tell the caller how
// authoritative the value is.
type RateResolution struct {
	Value        decimal.Decimal `json:"value"`
	ResolvedDate time.Time       `json:"resolvedDate"`
	IsExact      bool            `json:"isExact"`
	IsFallback   bool            `json:"isFallback"`
	IsDefault    bool            `json:"isDefault"`
}
