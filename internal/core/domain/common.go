package domain

import "time"

// Currency identifies one of the two supported denominations.
type Currency string

const (
	// VES is the local currency (Venezuelan bolívar).
	VES Currency = "VES"
	// USD is the reference currency. All cross-currency math resolves into USD.
	USD Currency = "USD"
)

// DateFormat is the wire format for calendar dates (no time component).
const DateFormat = "2006-01-02"

// Day truncates t to its calendar day at midnight UTC. All movement and
// exchange-rate dates are stored at day granularity.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a DateFormat string into a day-granular UTC time.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}
