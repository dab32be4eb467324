package wbapi

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/wb-go/wbf/zlog"
)

// Category is one browsable catalog node from the marketplace menu.
type Category struct {
	Name   string
	Shard  string
	Query  string
	Tokens []string
}

// CategoryCache holds the parsed category menu with a TTL. The menu is a
// few thousand entries and changes rarely, so it is refreshed lazily and a
// stale copy is served when the upstream is unavailable.
type CategoryCache struct {
	client   *Client
	ttl      time.Duration
	tokenize func(string) []string

	mu        sync.Mutex
	cached    []Category
	refreshed time.Time
}

// NewCategoryCache builds the cache. tokenize precomputes name tokens for
// category relevance scoring.
func NewCategoryCache(client *Client, ttl time.Duration, tokenize func(string) []string) *CategoryCache {
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	return &CategoryCache{client: client, ttl: ttl, tokenize: tokenize}
}

// Categories returns the cached menu, refreshing it when stale. On refresh
// failure the previous copy is returned, possibly empty.
func (cc *CategoryCache) Categories(ctx context.Context) []Category {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if cc.cached != nil && time.Since(cc.refreshed) < cc.ttl {
		return cc.cached
	}

	if err := cc.refreshLocked(ctx); err != nil {
		zlog.Logger.Warn().Err(err).Msg("category menu refresh failed, serving stale copy")
	}
	return cc.cached
}

// Refresh forces a reload regardless of TTL.
func (cc *CategoryCache) Refresh(ctx context.Context) error {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.refreshLocked(ctx)
}

func (cc *CategoryCache) refreshLocked(ctx context.Context) error {
	menu, err := cc.client.rawMenu(ctx)
	if err != nil {
		return err
	}

	var categories []Category
	seen := make(map[[2]string]struct{})

	var walk func(items []any)
	walk = func(items []any) {
		for _, rawItem := range items {
			item, isMap := rawItem.(map[string]any)
			if !isMap {
				continue
			}

			name, _ := item["name"].(string)
			name = strings.TrimSpace(name)
			shard, _ := item["shard"].(string)
			query, _ := item["query"].(string)

			// blackhole and c2c shards are not browsable catalogs.
			if shard != "" && shard != "blackhole" && shard != "c2c" && query != "" {
				key := [2]string{shard, query}
				if _, dup := seen[key]; !dup {
					seen[key] = struct{}{}
					categories = append(categories, Category{
						Name:   name,
						Shard:  shard,
						Query:  query,
						Tokens: cc.tokenize(name),
					})
				}
			}

			for _, childKey := range []string{"childs", "children"} {
				if children, isList := item[childKey].([]any); isList {
					walk(children)
				}
			}
		}
	}
	walk(menu)

	cc.cached = categories
	cc.refreshed = time.Now()
	return nil
}
