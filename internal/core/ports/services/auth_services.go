package services

import "context"

// StrongAuthResult is the three-way outcome of a strong-auth challenge.
type StrongAuthResult string

const (
	AuthGranted     StrongAuthResult = "granted"
	AuthDenied      StrongAuthResult = "denied"
	AuthUnavailable StrongAuthResult = "unavailable"
)

// StrongAuthSvc gates sensitive actions behind a local unlock challenge.
// It is decoupled from any platform credential API: callers only branch on
// the three-way result.
type StrongAuthSvc interface {
	// Challenge verifies a candidate PIN. Unavailable means no PIN is
	// configured or the vault could not be read; callers decide whether that
	// blocks or bypasses the gated action.
	Challenge(ctx context.Context, pin string) StrongAuthResult

	// SetPIN stores a new PIN as a salted one-way hash.
	SetPIN(ctx context.Context, pin string) error
}
