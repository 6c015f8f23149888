package localstore

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftStore_SaveOverwritesWholesale(t *testing.T) {
	ctx := context.Background()
	drafts := NewDraftStore(newTestStore(t))

	require.NoError(t, drafts.Save(ctx, "add_movement", json.RawMessage(`{"amount":"10"}`)))
	require.NoError(t, drafts.Save(ctx, "add_movement", json.RawMessage(`{"amount":"25"}`)))

	data, ok, err := drafts.Load(ctx, "add_movement")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"amount":"25"}`, string(data))
}

func TestDraftStore_ExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	drafts := NewDraftStore(newTestStore(t))

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	drafts.now = func() time.Time { return now }

	require.NoError(t, drafts.Save(ctx, "add_movement", json.RawMessage(`{}`)))

	// Just inside the window.
	drafts.now = func() time.Time { return now.Add(DraftTTL - time.Minute) }
	_, ok, err := drafts.Load(ctx, "add_movement")
	require.NoError(t, err)
	assert.True(t, ok)

	// Past the window: gone, and purged from disk.
	drafts.now = func() time.Time { return now.Add(DraftTTL + time.Minute) }
	_, ok, err = drafts.Load(ctx, "add_movement")
	require.NoError(t, err)
	assert.False(t, ok)

	// Even with the clock rolled back the purged draft stays gone.
	drafts.now = func() time.Time { return now }
	_, ok, err = drafts.Load(ctx, "add_movement")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDraftStore_ClearDiscardsDraft(t *testing.T) {
	ctx := context.Background()
	drafts := NewDraftStore(newTestStore(t))

	require.NoError(t, drafts.Save(ctx, "add_movement", json.RawMessage(`{}`)))
	require.NoError(t, drafts.Clear(ctx, "add_movement"))

	_, ok, err := drafts.Load(ctx, "add_movement")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDraftStore_KeysAreIndependentPerForm(t *testing.T) {
	ctx := context.Background()
	drafts := NewDraftStore(newTestStore(t))

	require.NoError(t, drafts.Save(ctx, "add_movement", json.RawMessage(`{"a":1}`)))
	require.NoError(t, drafts.Save(ctx, "edit_account", json.RawMessage(`{"b":2}`)))
	require.NoError(t, drafts.Clear(ctx, "add_movement"))

	_, ok, err := drafts.Load(ctx, "edit_account")
	require.NoError(t, err)
	assert.True(t, ok)
}
