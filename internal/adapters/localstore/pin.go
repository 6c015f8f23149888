package localstore

import (
	"context"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/ports/local"
)

const pinHashKey = "pin_hash"

// PINVault stores the bcrypt hash of the local unlock PIN.
type PINVault struct {
	store *Store
}

// NewPINVault creates a PIN vault over the given store.
func NewPINVault(store *Store) *PINVault {
	return &PINVault{store: store}
}

var _ local.PINVault = (*PINVault)(nil)

// SavePINHash overwrites the stored PIN hash.
func (v *PINVault) SavePINHash(ctx context.Context, hash string) error {
	return v.store.Put(pinHashKey, hash)
}

// PINHash returns the stored hash, or ok=false when no PIN is configured.
func (v *PINVault) PINHash(ctx context.Context) (string, bool, error) {
	var hash string
	ok, err := v.store.Get(pinHashKey, &hash)
	if err != nil {
		return "", false, err
	}
	return hash, ok, nil
}
