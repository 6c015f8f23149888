package services

import (
	"context"
	"fmt"

	"github.com/bolsillo-app/bolsillo_backend/internal/apperrors"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/ports/local"
	portssvc "github.com/bolsillo-app/bolsillo_backend/internal/core/ports/services"
	"github.com/bolsillo-app/bolsillo_backend/internal/utils"
)

// PINService implements the strong-auth challenge gate over a locally stored
// PIN. The PIN is kept only as a salted bcrypt hash.
type PINService struct {
	vault local.PINVault
}

// NewPINService creates a new PINService.
func NewPINService(vault local.PINVault) *PINService {
	return &PINService{vault: vault}
}

var _ portssvc.StrongAuthSvc = (*PINService)(nil)

// SetPIN stores a new unlock PIN.
func (s *PINService) SetPIN(ctx context.Context, pin string) error {
	if len(pin) < 4 {
		return fmt.Errorf("%w: PIN must be at least 4 digits", apperrors.ErrValidation)
	}
	hash, err := utils.HashPIN(pin)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}
	if err := s.vault.SavePINHash(ctx, hash); err != nil {
		return fmt.Errorf("failed to store PIN hash: %w", err)
	}
	return nil
}

// Challenge verifies a candidate PIN. Unavailable means no PIN is configured
// or the vault could not be read; the caller decides whether that blocks or
// bypasses the gated action.
func (s *PINService) Challenge(ctx context.Context, pin string) portssvc.StrongAuthResult {
	hash, ok, err := s.vault.PINHash(ctx)
	if err != nil || !ok {
		return portssvc.AuthUnavailable
	}
	if utils.CheckPIN(pin, hash) {
		return portssvc.AuthGranted
	}
	return portssvc.AuthDenied
}
