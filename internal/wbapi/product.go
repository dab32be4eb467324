package wbapi

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mkarpekin/wbwatch/internal/model"
)

var (
	itemIDRE        = regexp.MustCompile(`(\d{6,15})`)
	catalogItemIDRE = regexp.MustCompile(`(?i)/catalog/(\d{6,15})`)
)

// ExtractItemID pulls a marketplace article id out of a product URL or free
// text. Returns 0 when nothing usable is found.
func ExtractItemID(urlOrText string) int64 {
	if m := catalogItemIDRE.FindStringSubmatch(urlOrText); m != nil {
		if id, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			return id
		}
	}
	if m := itemIDRE.FindStringSubmatch(urlOrText); m != nil {
		if id, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			return id
		}
	}
	return 0
}

// ProductURL is the canonical item page for an article id.
func ProductURL(itemID int64) string {
	return "https://www.wildberries.ru/catalog/" + strconv.FormatInt(itemID, 10) + "/detail.aspx"
}

// Product is one raw product object from a marketplace payload. The upstream
// shapes are untrusted and drift between API versions, so every accessor
// tolerates missing or wrong-typed fields instead of failing.
type Product map[string]any

func asNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func parseInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case bool:
		return 0, false
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// ID returns the article id, trying both the current and legacy field names.
func (p Product) ID() (int64, bool) {
	for _, key := range []string{"id", "nmId"} {
		if n, ok := parseInt(p[key]); ok && n > 0 {
			return int64(n), true
		}
	}
	return 0, false
}

// Title falls back to a synthetic "WB #id" name when the payload has none.
func (p Product) Title(itemID int64) string {
	for _, key := range []string{"name", "imt_name"} {
		if s, ok := p[key].(string); ok && s != "" {
			return s
		}
	}
	return "WB #" + strconv.FormatInt(itemID, 10)
}

func (p Product) Brand() string {
	if s, ok := p["brand"].(string); ok {
		return s
	}
	return ""
}

func (p Product) Entity() string {
	if s, ok := p["entity"].(string); ok {
		return s
	}
	return ""
}

func (p Product) SubjectID() *int64 {
	for _, key := range []string{"subjectId", "subjectID"} {
		if n, ok := parseInt(p[key]); ok {
			id := int64(n)
			return &id
		}
	}
	return nil
}

// Price extracts the sale price in rubles. The price lives either in
// salePriceU (kopeck units) or, for sized goods, on the first size entry.
func (p Product) Price() decimal.NullDecimal {
	raw, ok := asNumber(p["salePriceU"])
	if !ok {
		if sizes, isList := p["sizes"].([]any); isList && len(sizes) > 0 {
			if first, isMap := sizes[0].(map[string]any); isMap {
				if priceData, isMap := first["price"].(map[string]any); isMap {
					raw, ok = asNumber(priceData["product"])
				}
			}
		}
	}
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{
		Decimal: decimal.NewFromFloat(raw).Div(decimal.NewFromInt(100)),
		Valid:   true,
	}
}

func (p Product) Rating() decimal.NullDecimal {
	for _, key := range []string{"nmReviewRating", "reviewRating", "rating"} {
		if raw, ok := asNumber(p[key]); ok {
			return decimal.NullDecimal{Decimal: decimal.NewFromFloat(raw), Valid: true}
		}
	}
	return decimal.NullDecimal{}
}

func (p Product) Reviews() *int {
	for _, key := range []string{"nmFeedbacks", "feedbacks", "feedbacksCount"} {
		if n, ok := parseInt(p[key]); ok {
			if n < 0 {
				n = 0
			}
			return &n
		}
	}
	return nil
}

func normalizeSize(raw any) string {
	val := strings.TrimSpace(toString(raw))
	switch val {
	case "", "0", "00", "none", "None":
		return ""
	}
	return val
}

func toString(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// Stock walks the sizes array and returns the distinct size names, whether
// any stock entry has a positive quantity, and the summed quantity.
func (p Product) Stock() (sizes []string, inStock bool, totalQty int) {
	sizesData, ok := p["sizes"].([]any)
	if !ok {
		return nil, false, 0
	}

	seen := make(map[string]struct{})
	for _, rawSize := range sizesData {
		size, isMap := rawSize.(map[string]any)
		if !isMap {
			continue
		}

		if name := normalizeSize(size["name"]); name != "" {
			if _, dup := seen[name]; !dup {
				seen[name] = struct{}{}
				sizes = append(sizes, name)
			}
		}

		stocks, isList := size["stocks"].([]any)
		if !isList {
			continue
		}
		for _, rawStock := range stocks {
			stock, isMap := rawStock.(map[string]any)
			if !isMap {
				continue
			}
			qty, _ := parseInt(stock["qty"])
			if qty > 0 {
				inStock = true
				totalQty += qty
			}
		}
	}

	sort.Strings(sizes)
	return sizes, inStock, totalQty
}

// Snapshot assembles a model.Snapshot from the raw product payload.
func (p Product) Snapshot(itemID int64) *model.Snapshot {
	sizes, inStock, totalQty := p.Stock()
	return &model.Snapshot{
		WBItemID:  itemID,
		Title:     p.Title(itemID),
		Price:     p.Price(),
		Rating:    p.Rating(),
		Reviews:   p.Reviews(),
		InStock:   inStock,
		TotalQty:  &totalQty,
		Sizes:     sizes,
		Brand:     p.Brand(),
		Entity:    p.Entity(),
		SubjectID: p.SubjectID(),
	}
}
