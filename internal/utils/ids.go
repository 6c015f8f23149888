package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewOfflineOperationID generates a locally-unique id for a captured offline
// operation. The capture-time millisecond prefix keeps ids sortable and the
// random suffix avoids collisions when several operations are captured within
// the same millisecond.
func NewOfflineOperationID() (string, error) {
	b := make([]byte, 5)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return fmt.Sprintf("offline_%d_%s", time.Now().UnixMilli(), hex.EncodeToString(b)), nil
}
