package domain

import (
	"encoding/json"
	"time"
)

// OperationKind identifies the remote write an offline operation replays.
type OperationKind string

// OpCreateMovement is currently the only captured operation kind; the queue
// format is extensible to further kinds.
const OpCreateMovement OperationKind = "create_movement"

// OfflineOperation is a captured, replayable remote write held locally until
// confirmed synced. Operations are never mutated in place: they are created
// when a write fails or connectivity is known absent, and removed only after
// a confirmed successful replay (or an explicit queue reset).
type OfflineOperation struct {
	OperationID string        `json:"id"` // locally generated, time+random
	Kind        OperationKind `json:"kind"`
	CapturedAt  time.Time     `json:"capturedAt"`
	Payload     Movement      `json:"payload"` // full movement creation body
}

// SyncResult reports the outcome of one queue drain pass. Successes commit
// independently of failures; failed operations stay queued for the next pass.
type SyncResult struct {
	Success          bool               `json:"success"` // true iff Failed == 0
	Synced           int                `json:"synced"`
	Failed           int                `json:"failed"`
	FailedOperations []OfflineOperation `json:"failedOperations,omitempty"`
}

// Draft is transient local staging of an unsubmitted form. Drafts are
// overwritten wholesale on every save and expire 24 hours after SavedAt,
// enforced lazily on load.
type Draft struct {
	Data    json.RawMessage `json:"data"`
	SavedAt time.Time       `json:"savedAt"`
}
