package similar

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/wb-go/wbf/zlog"

	"github.com/mkarpekin/wbwatch/internal/model"
)

const (
	webFetchConcurrency = 8
	webMinCandidates    = 40
)

// FindCheaperViaWeb is the fallback path for when the marketplace search and
// catalog endpoints yield nothing: it scrapes candidate article ids from a
// marketplace-scoped web search, resolves each id to a live snapshot and
// applies the strict acceptance gates in a single pass.
func (e *Engine) FindCheaperViaWeb(ctx context.Context, ref *model.Snapshot, opts Options) []model.SimilarProduct {
	if opts.Limit <= 0 {
		opts.Limit = defaultLimit
	}

	mc := e.tok.BuildContext(ref.Title, ref.Entity, ref.Brand)
	if len(mc.Tokens) == 0 {
		return nil
	}
	// Web result titles are free text, so the brand gate uses the raw brand
	// tokens instead of the title-overlap subset.
	mc.BrandTokens = e.tok.TokenSet(ref.Brand)

	ids := e.webCandidateIDs(ctx, ref.Title, mc)
	maxCandidates := opts.Limit * 6
	if maxCandidates < webMinCandidates {
		maxCandidates = webMinCandidates
	}

	var filtered []int64
	for _, id := range ids {
		if id == opts.ExcludeID {
			continue
		}
		filtered = append(filtered, id)
		if len(filtered) >= maxCandidates {
			break
		}
	}
	if len(filtered) == 0 {
		return nil
	}

	snapshots := e.fetchSnapshots(ctx, filtered)

	pass := passConfig{
		matchPercent:       normalizeMatchPercent(opts.MatchPercent),
		enforceGender:      false,
		requiredAnchors:    mc.RequiredAnchorMatches,
		requireModelTokens: true,
	}

	var out []model.SimilarProduct
	for _, snap := range snapshots {
		if snap == nil {
			continue
		}
		cand := snapshotCandidate(snap)
		if !e.accept(mc, pass, ref.SubjectID, opts.MaxPrice, cand) {
			continue
		}
		out = append(out, similarProduct(cand))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Price.LessThan(out[j].Price)
	})
	if len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out
}

// webCandidateIDs collects article ids from site-scoped queries, preserving
// discovery order across queries.
func (e *Engine) webCandidateIDs(ctx context.Context, title string, mc *MatchContext) []int64 {
	queries := []string{"site:wildberries.ru " + strings.TrimSpace(title)}
	if models := sortedTokens(mc.ModelTokens); len(models) > 0 {
		queries = append(queries, queries[0]+" "+strings.Join(models, " "))
	}

	var out []int64
	seen := make(map[int64]struct{})
	for _, query := range queries {
		ids, err := e.wb.WebSearchIDs(ctx, query, webMinCandidates)
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("query", query).Msg("web search failed")
			continue
		}
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// fetchSnapshots resolves ids concurrently with a bounded worker pool. Failed
// lookups leave nil holes; order follows the input ids.
func (e *Engine) fetchSnapshots(ctx context.Context, ids []int64) []*model.Snapshot {
	snapshots := make([]*model.Snapshot, len(ids))

	var wg sync.WaitGroup
	sem := make(chan struct{}, webFetchConcurrency)

	for i, id := range ids {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-sem }()

			snap, err := e.snap.FetchProduct(ctx, id)
			if err != nil {
				zlog.Logger.Debug().Err(err).Int64("item_id", id).Msg("web candidate fetch failed")
				return
			}
			snapshots[i] = snap
		}(i, id)
	}
	wg.Wait()

	return snapshots
}
