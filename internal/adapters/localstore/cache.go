package localstore

import (
	"context"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/ports/local"
)

const (
	cachedAccountsKey   = "cached_accounts"
	cachedCategoriesKey = "cached_categories"
	cachedMovementsKey  = "cached_movements"
)

// ReferenceCache keeps last-known snapshots of remote reference data so the
// write path can populate forms while disconnected. Read failures report
// absent; a stale or missing cache is never an error.
type ReferenceCache struct {
	store *Store
}

// NewReferenceCache creates a reference cache over the given store.
func NewReferenceCache(store *Store) *ReferenceCache {
	return &ReferenceCache{store: store}
}

var _ local.ReferenceCache = (*ReferenceCache)(nil)

// PutAccounts overwrites the cached account snapshot.
func (c *ReferenceCache) PutAccounts(ctx context.Context, accounts []domain.Account) error {
	return c.store.Put(cachedAccountsKey, accounts)
}

// Accounts returns the cached account snapshot, if any.
func (c *ReferenceCache) Accounts(ctx context.Context) ([]domain.Account, bool) {
	var accounts []domain.Account
	if ok, err := c.store.Get(cachedAccountsKey, &accounts); !ok || err != nil {
		return nil, false
	}
	return accounts, true
}

// PutCategories overwrites the cached category snapshot.
func (c *ReferenceCache) PutCategories(ctx context.Context, categories []domain.Category) error {
	return c.store.Put(cachedCategoriesKey, categories)
}

// Categories returns the cached category snapshot, if any.
func (c *ReferenceCache) Categories(ctx context.Context) ([]domain.Category, bool) {
	var categories []domain.Category
	if ok, err := c.store.Get(cachedCategoriesKey, &categories); !ok || err != nil {
		return nil, false
	}
	return categories, true
}

// PutMovements overwrites the cached movement snapshot.
func (c *ReferenceCache) PutMovements(ctx context.Context, movements []domain.Movement) error {
	return c.store.Put(cachedMovementsKey, movements)
}

// Movements returns the cached movement snapshot, if any.
func (c *ReferenceCache) Movements(ctx context.Context) ([]domain.Movement, bool) {
	var movements []domain.Movement
	if ok, err := c.store.Get(cachedMovementsKey, &movements); !ok || err != nil {
		return nil, false
	}
	return movements, true
}
