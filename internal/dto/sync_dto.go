package dto

import "github.com/bolsillo-app/bolsillo_backend/internal/core/domain"

// SyncStatusResponse reports connectivity and queue state.
type SyncStatusResponse struct {
	Online       bool `json:"online"`
	Syncing      bool `json:"syncing"`
	PendingCount int  `json:"pendingCount"`
}

// SyncResultResponse reports the outcome of one drain pass as a count tuple,
// never an all-or-nothing error.
type SyncResultResponse struct {
	Success bool `json:"success"`
	Synced  int  `json:"synced"`
	Failed  int  `json:"failed"`
	Pending int  `json:"pending"`
}

// ToSyncResultResponse converts a domain.SyncResult to its response DTO.
func ToSyncResultResponse(r *domain.SyncResult, pending int) SyncResultResponse {
	return SyncResultResponse{
		Success: r.Success,
		Synced:  r.Synced,
		Failed:  r.Failed,
		Pending: pending,
	}
}
