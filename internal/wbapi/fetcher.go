package wbapi

import (
	"context"

	"github.com/wb-go/wbf/zlog"

	"github.com/mkarpekin/wbwatch/internal/model"
)

// SnapshotCache is the short-TTL product cache consulted before hitting the
// card endpoint. A miss is (nil, nil).
type SnapshotCache interface {
	Get(ctx context.Context, itemID int64) (*model.Snapshot, error)
	Set(ctx context.Context, snap *model.Snapshot) error
}

// Fetcher resolves an article id to a current product snapshot, cache-aside.
// Cache trouble is logged and ignored: the source of truth is the card API.
type Fetcher struct {
	client *Client
	cache  SnapshotCache
}

func NewFetcher(client *Client, cache SnapshotCache) *Fetcher {
	return &Fetcher{client: client, cache: cache}
}

// FetchProduct returns the current snapshot for an item. ErrNotFound when
// the marketplace has no card for it.
func (f *Fetcher) FetchProduct(ctx context.Context, itemID int64) (*model.Snapshot, error) {
	if f.cache != nil {
		cached, err := f.cache.Get(ctx, itemID)
		if err != nil {
			zlog.Logger.Warn().Err(err).Int64("item_id", itemID).Msg("snapshot cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	product, err := f.client.ProductDetail(ctx, itemID)
	if err != nil {
		return nil, err
	}

	snap := product.Snapshot(itemID)
	if f.cache != nil {
		if err := f.cache.Set(ctx, snap); err != nil {
			zlog.Logger.Warn().Err(err).Int64("item_id", itemID).Msg("snapshot cache write failed")
		}
	}
	return snap, nil
}
