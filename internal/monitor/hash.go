package monitor

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// EventHash is the deduplication key for one rendered alert of one track.
// Identical alert text within the dedup window collapses to one delivery.
func EventHash(trackID int64, text string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d:event:%s", trackID, text)))
	return hex.EncodeToString(sum[:])[:48]
}
