package similar

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/zlog"

	"github.com/mkarpekin/wbwatch/internal/model"
	"github.com/mkarpekin/wbwatch/internal/wbapi"
)

const (
	defaultMatchPercent = 50
	defaultLimit        = 5
	pagesPerSource      = 2
	maxCategories       = 8
)

// MarketClient is the slice of the marketplace client the engine needs.
type MarketClient interface {
	Search(ctx context.Context, query string, page int) ([]wbapi.Product, error)
	CatalogPage(ctx context.Context, shard, query string, page int, subjectID *int64) ([]wbapi.Product, error)
	WebSearchIDs(ctx context.Context, query string, limit int) ([]int64, error)
}

// CategorySource serves the cached catalog menu.
type CategorySource interface {
	Categories(ctx context.Context) []wbapi.Category
}

// SnapshotFetcher resolves article ids for the web fallback path.
type SnapshotFetcher interface {
	FetchProduct(ctx context.Context, itemID int64) (*model.Snapshot, error)
}

// Options bound one find-cheaper search.
type Options struct {
	MaxPrice     decimal.Decimal
	ExcludeID    int64
	MatchPercent int // 0 means the default threshold
	Limit        int
}

// Engine finds cheaper functional equivalents of a reference product. Its
// only failure mode is an empty result: source errors are swallowed and
// logged, never surfaced to the caller.
type Engine struct {
	wb   MarketClient
	cats CategorySource
	snap SnapshotFetcher
	tok  *Tokenizer
}

func NewEngine(wb MarketClient, cats CategorySource, snap SnapshotFetcher, tok *Tokenizer) *Engine {
	if tok == nil {
		tok = NewTokenizer(nil)
	}
	return &Engine{wb: wb, cats: cats, snap: snap, tok: tok}
}

// passConfig is one rung of the relaxation ladder. Passes run in order until
// one yields at least one candidate; the price gate never relaxes.
type passConfig struct {
	matchPercent       int
	enforceGender      bool
	minRelevance       int
	requiredAnchors    int
	requireModelTokens bool
}

func normalizeMatchPercent(value int) int {
	if value <= 0 {
		return defaultMatchPercent
	}
	if value < 10 {
		return 10
	}
	if value > 95 {
		return 95
	}
	return value
}

func (e *Engine) passes(mc *MatchContext, threshold int) []passConfig {
	strict := normalizeMatchPercent(threshold)
	relaxed := strict - 15
	if relaxed < 20 {
		relaxed = 20
	}
	minimal := strict - 30
	if minimal < 10 {
		minimal = 10
	}

	strictRelevance := 1
	if len(mc.Tokens) >= 3 {
		strictRelevance = 2
	}

	relaxedAnchors := mc.RequiredAnchorMatches
	if mc.StrongAnchorCount < 2 && relaxedAnchors > 1 {
		relaxedAnchors--
	}

	passes := []passConfig{
		{strict, true, strictRelevance, mc.RequiredAnchorMatches, true},
		{relaxed, false, 1, relaxedAnchors, true},
		{minimal, false, 0, relaxedAnchors, true},
	}
	if len(mc.ModelTokens) > 0 {
		fallbackAnchors := relaxedAnchors - 1
		if fallbackAnchors < 0 {
			fallbackAnchors = 0
		}
		passes = append(passes, passConfig{minimal, false, 0, fallbackAnchors, false})
	}
	return passes
}

// candidate is the predicate's view of one raw product.
type candidate struct {
	id      int64
	title   string
	text    string
	brand   string
	price   decimal.NullDecimal
	subject *int64
}

func productCandidate(p wbapi.Product) (candidate, bool) {
	id, ok := p.ID()
	if !ok {
		return candidate{}, false
	}
	title := p.Title(id)
	return candidate{
		id:      id,
		title:   title,
		text:    title + " " + p.Entity(),
		brand:   p.Brand(),
		price:   p.Price(),
		subject: p.SubjectID(),
	}, true
}

func snapshotCandidate(s *model.Snapshot) candidate {
	return candidate{
		id:      s.WBItemID,
		title:   s.Title,
		text:    s.Title + " " + s.Entity,
		brand:   s.Brand,
		price:   s.Price,
		subject: s.SubjectID,
	}
}

// accept applies the common acceptance predicate for one candidate under one
// pass's gates. refSubject is the reference's category/subject id, if known.
func (e *Engine) accept(mc *MatchContext, pass passConfig, refSubject *int64, maxPrice decimal.Decimal, cand candidate) bool {
	if !cand.price.Valid || !cand.price.Decimal.LessThan(maxPrice) {
		return false
	}
	if refSubject != nil && cand.subject != nil && *cand.subject != *refSubject {
		return false
	}
	if pass.enforceGender && mc.Gender != "" {
		if g := e.tok.DetectGender(cand.text); g != "" && g != mc.Gender {
			return false
		}
	}

	tokens := e.tok.CharacteristicTokens(cand.text)
	if !ecosystemCompatible(mc.Ecosystem, tokens) {
		return false
	}
	if pass.requireModelTokens && !modelTokensCompatible(mc.ModelTokens, cand.text, tokens) {
		return false
	}
	if len(mc.BrandTokens) > 0 {
		if brand := e.tok.TokenSet(cand.brand); len(brand) > 0 && matchCount(mc.BrandTokens, brand) == 0 {
			return false
		}
	}
	if pass.requiredAnchors > 0 && matchCount(mc.AnchorTokens, tokens) < pass.requiredAnchors {
		return false
	}
	if len(mc.TypeTokens) > 0 && matchCount(mc.TypeTokens, tokens) == 0 {
		return false
	}
	if pass.matchPercent > 0 && matchPercent(mc.Tokens, tokens) < pass.matchPercent {
		return false
	}
	return true
}

func similarProduct(cand candidate) model.SimilarProduct {
	return model.SimilarProduct{
		WBItemID: cand.id,
		Title:    cand.title,
		Price:    cand.price.Decimal,
		URL:      wbapi.ProductURL(cand.id),
	}
}

// buildSearchQuery keeps the title's leading tokens, appending literal model
// tokens when present so the search engine sees exact model spellings.
func (e *Engine) buildSearchQuery(title string) string {
	tokens := e.tok.Tokenize(title)
	if len(tokens) == 0 {
		trimmed := []rune(strings.TrimSpace(title))
		if len(trimmed) > 80 {
			trimmed = trimmed[:80]
		}
		return string(trimmed)
	}

	models := sortedTokens(ExtractModelTokens(title))
	if len(models) > 0 {
		combined := append(append([]string{}, tokens...), models...)
		if len(combined) > 8 {
			combined = combined[:8]
		}
		return strings.Join(combined, " ")
	}
	if len(tokens) > 6 {
		tokens = tokens[:6]
	}
	return strings.Join(tokens, " ")
}

func sortedTokens(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for token := range set {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

// FindCheaper runs the staged search. The result is price-ascending, free of
// duplicate ids, excludes the reference and is at most Limit long.
func (e *Engine) FindCheaper(ctx context.Context, ref *model.Snapshot, opts Options) []model.SimilarProduct {
	if opts.Limit <= 0 {
		opts.Limit = defaultLimit
	}

	mc := e.tok.BuildContext(ref.Title, ref.Entity, ref.Brand)
	if len(mc.Tokens) == 0 {
		return nil
	}

	var combined []model.SimilarProduct
	seen := map[int64]struct{}{opts.ExcludeID: {}}

	for _, pass := range e.passes(mc, opts.MatchPercent) {
		e.collectSearch(ctx, ref, mc, pass, opts, seen, &combined)
		if len(combined) < opts.Limit {
			e.collectCatalog(ctx, ref, mc, pass, opts, seen, &combined)
		}
		if len(combined) > 0 {
			break
		}
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Price.LessThan(combined[j].Price)
	})
	if len(combined) > opts.Limit {
		combined = combined[:opts.Limit]
	}
	return combined
}

func (e *Engine) collectSearch(
	ctx context.Context,
	ref *model.Snapshot,
	mc *MatchContext,
	pass passConfig,
	opts Options,
	seen map[int64]struct{},
	combined *[]model.SimilarProduct,
) {
	query := e.buildSearchQuery(ref.Title)
	if query == "" {
		return
	}

	for page := 1; page <= pagesPerSource; page++ {
		if len(*combined) >= opts.Limit {
			return
		}

		products, err := e.wb.Search(ctx, query, page)
		if err != nil {
			// One source failing is zero results from it, never an abort.
			zlog.Logger.Warn().Err(err).Str("query", query).Int("page", page).Msg("search source failed")
			continue
		}

		for _, product := range products {
			if len(*combined) >= opts.Limit {
				return
			}
			cand, ok := productCandidate(product)
			if !ok {
				continue
			}
			if _, dup := seen[cand.id]; dup {
				continue
			}
			if !e.accept(mc, pass, ref.SubjectID, opts.MaxPrice, cand) {
				continue
			}
			seen[cand.id] = struct{}{}
			*combined = append(*combined, similarProduct(cand))
		}
	}
}

func (e *Engine) collectCatalog(
	ctx context.Context,
	ref *model.Snapshot,
	mc *MatchContext,
	pass passConfig,
	opts Options,
	seen map[int64]struct{},
	combined *[]model.SimilarProduct,
) {
	categories := e.cats.Categories(ctx)
	if len(categories) == 0 {
		return
	}

	type scored struct {
		score    int
		category wbapi.Category
	}
	var ranked []scored
	for _, category := range categories {
		tokens := make(map[string]struct{}, len(category.Tokens))
		for _, token := range category.Tokens {
			tokens[token] = struct{}{}
		}
		if score := overlapScore(mc.Tokens, tokens); score > 0 {
			ranked = append(ranked, scored{score, category})
		}
	}
	if len(ranked) == 0 {
		return
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > maxCategories {
		ranked = ranked[:maxCategories]
	}

	type relevantProduct struct {
		relevance int
		product   model.SimilarProduct
	}
	var picked []relevantProduct
	remaining := opts.Limit - len(*combined)

	for _, entry := range ranked {
		for page := 1; page <= pagesPerSource; page++ {
			products, err := e.wb.CatalogPage(ctx, entry.category.Shard, entry.category.Query, page, ref.SubjectID)
			if err != nil {
				zlog.Logger.Warn().Err(err).Str("shard", entry.category.Shard).Msg("catalog source failed")
				products = nil
			}
			// Subject-filtered browse can come back empty for sparse
			// categories; retry the page unfiltered.
			if len(products) == 0 && ref.SubjectID != nil {
				products, err = e.wb.CatalogPage(ctx, entry.category.Shard, entry.category.Query, page, nil)
				if err != nil {
					zlog.Logger.Warn().Err(err).Str("shard", entry.category.Shard).Msg("catalog source failed")
				}
			}
			if len(products) == 0 {
				break
			}

			for _, product := range products {
				cand, ok := productCandidate(product)
				if !ok {
					continue
				}
				if _, dup := seen[cand.id]; dup {
					continue
				}
				if !e.accept(mc, pass, ref.SubjectID, opts.MaxPrice, cand) {
					continue
				}
				relevance := overlapScore(mc.Tokens, e.tok.TokenSet(cand.title))
				if relevance < pass.minRelevance {
					continue
				}
				seen[cand.id] = struct{}{}
				picked = append(picked, relevantProduct{relevance, similarProduct(cand)})
			}

			if len(picked) >= remaining {
				break
			}
		}
		if len(picked) >= remaining {
			break
		}
	}

	sort.SliceStable(picked, func(i, j int) bool {
		if !picked[i].product.Price.Equal(picked[j].product.Price) {
			return picked[i].product.Price.LessThan(picked[j].product.Price)
		}
		return picked[i].relevance > picked[j].relevance
	})
	if len(picked) > remaining {
		picked = picked[:remaining]
	}
	for _, item := range picked {
		*combined = append(*combined, item.product)
	}
}
