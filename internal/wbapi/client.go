// Package wbapi talks to the marketplace HTTP endpoints: product card
// lookups, keyword search, catalog browsing and the category menu. All
// payloads are treated as untrusted, partially-structured input.
package wbapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/wb-go/wbf/zlog"
	"golang.org/x/time/rate"
)

const (
	detailURL  = "https://card.wb.ru/cards/v4/detail?appType=1&curr=rub&dest=-1257786&nm=%d"
	searchURL  = "https://search.wb.ru/exactmatch/ru/common/v13/search?ab_testing=false&appType=1&curr=rub&dest=-1257786&lang=ru&page=%d&query=%s&resultset=catalog&sort=popular&spp=30&suppressSpellcheck=false"
	legacyURL  = "https://search.wb.ru/exactmatch/ru/common/v9/search?ab_testing=false&appType=1&curr=rub&dest=-1257786&lang=ru&page=%d&query=%s&resultset=catalog&sort=popular&spp=30&suppressSpellcheck=false"
	menuURL    = "https://static-basket-01.wbbasket.ru/vol0/data/main-menu-ru-ru-v3.json"
	catalogURL = "https://catalog.wb.ru/catalog/%s/v4/catalog?ab_testing=false&appType=1&curr=rub&dest=-1257786&lang=ru&page=%d&sort=popular&spp=30"

	webSearchURL = "https://duckduckgo.com/html/?q=%s"
)

var webItemIDRE = regexp.MustCompile(`(?i)/catalog/(\d{6,15})/detail\.aspx`)

// ErrNotFound is returned when the marketplace has no card for an item.
var ErrNotFound = errors.New("wbapi: product not found")

// RetryPolicy is a small linear-backoff retry: attempt n sleeps n*Delay.
// Transient upstream trouble (timeouts, 429, 5xx, bad JSON) is retried,
// then reported to the caller as an error.
type RetryPolicy struct {
	Attempts int           `mapstructure:"attempts"`
	Delay    time.Duration `mapstructure:"delay"`
}

// Config for the marketplace client.
type Config struct {
	Timeout           time.Duration `mapstructure:"timeout"`
	ProxyURL          string        `mapstructure:"proxy_url"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Retry             RetryPolicy   `mapstructure:"retry"`
}

// Client is the marketplace HTTP client with per-call timeout, retry with
// linear backoff and an outbound rate limiter shared by all endpoints.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	retry   RetryPolicy
}

// NewClient builds a Client. Zero config fields get conservative defaults.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 5
	}
	if cfg.Retry.Attempts <= 0 {
		cfg.Retry.Attempts = 3
	}
	if cfg.Retry.Delay <= 0 {
		cfg.Retry.Delay = 350 * time.Millisecond
	}

	transport := http.DefaultTransport
	if cfg.ProxyURL != "" {
		if proxy, err := url.Parse(cfg.ProxyURL); err == nil {
			transport = &http.Transport{Proxy: http.ProxyURL(proxy)}
		} else {
			zlog.Logger.Warn().Err(err).Msg("invalid proxy url, using direct connection")
		}
	}

	return &Client{
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 10),
		retry:   cfg.Retry,
	}
}

func setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Referer", "https://www.wildberries.ru/")
	req.Header.Set("Origin", "https://www.wildberries.ru")
	req.Header.Set("Accept-Language", "ru-RU,ru;q=0.9,en-US;q=0.8,en;q=0.7")
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= c.retry.Attempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, err := c.doGet(ctx, rawURL)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if attempt < c.retry.Attempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * c.retry.Delay):
			}
		}
	}
	return nil, lastErr
}

func (c *Client) doGet(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, v any) error {
	body, err := c.get(ctx, rawURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// extractProducts digs the products list out of a payload, checking both the
// top-level and the nested data.products placements used by different API
// versions.
func extractProducts(payload map[string]any) []Product {
	raw, ok := payload["products"].([]any)
	if !ok {
		if nested, isMap := payload["data"].(map[string]any); isMap {
			raw, _ = nested["products"].([]any)
		}
	}

	out := make([]Product, 0, len(raw))
	for _, item := range raw {
		if m, isMap := item.(map[string]any); isMap {
			out = append(out, Product(m))
		}
	}
	return out
}

// ProductDetail fetches the current card for one item. ErrNotFound when the
// card endpoint has no product for the id.
func (c *Client) ProductDetail(ctx context.Context, itemID int64) (Product, error) {
	var payload map[string]any
	if err := c.getJSON(ctx, fmt.Sprintf(detailURL, itemID), &payload); err != nil {
		return nil, fmt.Errorf("fetch product %d: %w", itemID, err)
	}

	products := extractProducts(payload)
	if len(products) == 0 {
		return nil, ErrNotFound
	}
	return products[0], nil
}

// Search runs a keyword search. The legacy endpoint is consulted when the
// current one errors out or returns nothing.
func (c *Client) Search(ctx context.Context, query string, page int) ([]Product, error) {
	encoded := url.QueryEscape(query)

	var payload map[string]any
	err := c.getJSON(ctx, fmt.Sprintf(searchURL, page, encoded), &payload)
	if err == nil {
		if products := extractProducts(payload); len(products) > 0 {
			return products, nil
		}
	}

	payload = nil
	if err := c.getJSON(ctx, fmt.Sprintf(legacyURL, page, encoded), &payload); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	return extractProducts(payload), nil
}

// CatalogPage browses one page of a catalog shard. A non-nil subjectID is
// passed through as a filter.
func (c *Client) CatalogPage(ctx context.Context, shard, query string, page int, subjectID *int64) ([]Product, error) {
	rawURL := fmt.Sprintf(catalogURL, shard, page) + "&" + query
	if subjectID != nil {
		rawURL += "&subject=" + strconv.FormatInt(*subjectID, 10)
	}

	var payload map[string]any
	if err := c.getJSON(ctx, rawURL, &payload); err != nil {
		return nil, fmt.Errorf("catalog %s page %d: %w", shard, page, err)
	}
	return extractProducts(payload), nil
}

// rawMenu fetches the full category menu tree.
func (c *Client) rawMenu(ctx context.Context) ([]any, error) {
	var payload []any
	if err := c.getJSON(ctx, menuURL, &payload); err != nil {
		return nil, fmt.Errorf("fetch menu: %w", err)
	}
	return payload, nil
}

// WebSearchIDs runs a marketplace-scoped web search and scrapes candidate
// article ids from the result page, preserving order and dropping repeats.
func (c *Client) WebSearchIDs(ctx context.Context, query string, limit int) ([]int64, error) {
	q := url.QueryEscape(query)
	if q == "" {
		return nil, nil
	}

	body, err := c.get(ctx, fmt.Sprintf(webSearchURL, q))
	if err != nil {
		return nil, fmt.Errorf("web search: %w", err)
	}

	var out []int64
	seen := make(map[int64]struct{})
	for _, m := range webItemIDRE.FindAllStringSubmatch(string(body), -1) {
		id, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
