package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarpekin/wbwatch/internal/model"
)

func TestDue(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	checked := func(minAgo int) *time.Time {
		ts := now.Add(-time.Duration(minAgo) * time.Minute)
		return &ts
	}

	tracks := []model.Track{
		{ID: 1, CheckIntervalMin: 60, LastCheckedAt: nil},
		{ID: 2, CheckIntervalMin: 60, LastCheckedAt: checked(61)},
		{ID: 3, CheckIntervalMin: 60, LastCheckedAt: checked(60)}, // boundary, due
		{ID: 4, CheckIntervalMin: 60, LastCheckedAt: checked(59)},
		{ID: 5, CheckIntervalMin: 15, LastCheckedAt: checked(20)},
	}

	due := Due(tracks, now)
	require.Len(t, due, 4)

	ids := make([]int64, 0, len(due))
	for _, track := range due {
		ids = append(ids, track.ID)
	}
	assert.Equal(t, []int64{1, 2, 3, 5}, ids)
}

func TestEventHash(t *testing.T) {
	first := EventHash(10, "price dropped")
	assert.Len(t, first, 48)
	assert.Equal(t, first, EventHash(10, "price dropped"))
	assert.NotEqual(t, first, EventHash(11, "price dropped"))
	assert.NotEqual(t, first, EventHash(10, "price dropped again"))
}
