package monitor

import (
	"time"

	"github.com/mkarpekin/wbwatch/internal/model"
)

// Due filters the tracks whose check interval has elapsed. A track that was
// never checked is always due; a track checked exactly one interval ago is
// due as well.
func Due(tracks []model.Track, now time.Time) []model.Track {
	var due []model.Track
	for _, track := range tracks {
		if track.LastCheckedAt == nil {
			due = append(due, track)
			continue
		}
		interval := time.Duration(track.CheckIntervalMin) * time.Minute
		if now.Sub(*track.LastCheckedAt) >= interval {
			due = append(due, track)
		}
	}
	return due
}
