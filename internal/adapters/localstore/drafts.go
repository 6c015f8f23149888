package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bolsillo-app/bolsillo_backend/internal/core/domain"
	"github.com/bolsillo-app/bolsillo_backend/internal/core/ports/local"
)

const draftKeyPrefix = "draft_"

// DraftTTL is how long an unsubmitted form draft stays loadable.
const DraftTTL = 24 * time.Hour

// DraftStore stages in-progress form state with time-based expiry, checked
// lazily on load.
type DraftStore struct {
	store *Store
	now   func() time.Time
}

// NewDraftStore creates a draft store over the given store.
func NewDraftStore(store *Store) *DraftStore {
	return &DraftStore{store: store, now: time.Now}
}

var _ local.DraftStore = (*DraftStore)(nil)

// Save overwrites the draft for a form wholesale, stamped with the current time.
func (d *DraftStore) Save(ctx context.Context, formKey string, data json.RawMessage) error {
	draft := domain.Draft{Data: data, SavedAt: d.now().UTC()}
	if err := d.store.Put(draftKeyPrefix+formKey, draft); err != nil {
		return fmt.Errorf("failed to save draft %s: %w", formKey, err)
	}
	return nil
}

// Load returns the draft data if present and younger than DraftTTL. An
// expired draft is purged as a side effect of the read. Storage read or parse
// failures are treated as absent, never propagated as hard errors.
func (d *DraftStore) Load(ctx context.Context, formKey string) (json.RawMessage, bool, error) {
	key := draftKeyPrefix + formKey
	var draft domain.Draft
	ok, err := d.store.Get(key, &draft)
	if err != nil || !ok {
		return nil, false, nil
	}
	if d.now().Sub(draft.SavedAt) >= DraftTTL {
		_ = d.store.Delete(key)
		return nil, false, nil
	}
	return draft.Data, true, nil
}

// Clear discards the draft for a form.
func (d *DraftStore) Clear(ctx context.Context, formKey string) error {
	return d.store.Delete(draftKeyPrefix + formKey)
}
