// Package cache holds the short-TTL redis caches: product snapshots, similar
// search results and the worker heartbeat. Every entry is a JSON blob keyed
// by a typed prefix.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/mkarpekin/wbwatch/internal/model"
)

const (
	snapshotTTL = 30 * time.Minute
	similarTTL  = 10 * time.Minute
	stateTTL    = time.Hour

	snapshotKeyPrefix = "WbItemCache:"
	similarKeyPrefix  = "SimilarSearchCache:"
	workerStateKey    = "WorkerState:state"
)

// client is the slice of the redis client the caches need.
type client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

func getJSON(ctx context.Context, rdb client, key string, v any) (bool, error) {
	raw, err := rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

func setJSON(ctx context.Context, rdb client, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Snapshots caches fresh product snapshots so that a check cycle and a
// similar search hitting the same item within the TTL share one card fetch.
type Snapshots struct {
	rdb client
}

func NewSnapshots(rdb client) *Snapshots {
	return &Snapshots{rdb: rdb}
}

func (c *Snapshots) Get(ctx context.Context, itemID int64) (*model.Snapshot, error) {
	var snap model.Snapshot
	ok, err := getJSON(ctx, c.rdb, snapshotKeyPrefix+strconv.FormatInt(itemID, 10), &snap)
	if err != nil || !ok {
		return nil, err
	}
	return &snap, nil
}

func (c *Snapshots) Set(ctx context.Context, snap *model.Snapshot) error {
	return setJSON(ctx, c.rdb, snapshotKeyPrefix+strconv.FormatInt(snap.WBItemID, 10), snap, snapshotTTL)
}

// SimilarResults caches one similar-products answer per track, so repeated
// "find cheaper" taps within the TTL do not rescan the marketplace.
type SimilarResults struct {
	rdb client
}

func NewSimilarResults(rdb client) *SimilarResults {
	return &SimilarResults{rdb: rdb}
}

func (c *SimilarResults) Get(ctx context.Context, trackID int64) ([]model.SimilarProduct, bool, error) {
	var items []model.SimilarProduct
	ok, err := getJSON(ctx, c.rdb, similarKeyPrefix+strconv.FormatInt(trackID, 10), &items)
	return items, ok, err
}

func (c *SimilarResults) Set(ctx context.Context, trackID int64, items []model.SimilarProduct) error {
	if items == nil {
		items = []model.SimilarProduct{}
	}
	return setJSON(ctx, c.rdb, similarKeyPrefix+strconv.FormatInt(trackID, 10), items, similarTTL)
}

// State is the worker heartbeat visible to the health endpoint.
type State struct {
	LastOK    time.Time `json:"last_ok"`
	CycleSecs float64   `json:"cycle_sec"`
}

// WorkerState publishes the monitoring loop's heartbeat. The entry expiring
// means the worker has not completed a cycle in an hour.
type WorkerState struct {
	rdb client
}

func NewWorkerState(rdb client) *WorkerState {
	return &WorkerState{rdb: rdb}
}

func (c *WorkerState) MarkCycle(ctx context.Context, finishedAt time.Time, cycle time.Duration) error {
	return setJSON(ctx, c.rdb, workerStateKey, State{
		LastOK:    finishedAt,
		CycleSecs: cycle.Seconds(),
	}, stateTTL)
}

// Load returns the last heartbeat, or ok=false when the worker is silent.
func (c *WorkerState) Load(ctx context.Context) (State, bool, error) {
	var state State
	ok, err := getJSON(ctx, c.rdb, workerStateKey, &state)
	return state, ok, err
}
