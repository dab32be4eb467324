package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User plans. Pro shortens check intervals and unlocks quantity watching.
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// User is a monitored-marketplace user identified by their Telegram id.
type User struct {
	ID           int64      `json:"id"`
	TgUserID     int64      `json:"tg_user_id"`
	Username     string     `json:"username,omitempty"`
	Plan         string     `json:"plan"`
	ProExpiresAt *time.Time `json:"pro_expires_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Track is one user's subscription to one marketplace item.
//
// The last_* fields hold the state seen on the previous successful check;
// the change detector compares them against a fresh snapshot. A paused
// (inactive) track is never picked up by the scheduler.
type Track struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	WBItemID int64  `json:"wb_item_id"`
	URL      string `json:"url"`
	Title    string `json:"title"`

	TargetPrice       decimal.NullDecimal `json:"target_price,omitempty"`
	TargetDropPercent int                 `json:"target_drop_percent,omitempty"`

	WatchStock bool     `json:"watch_stock"`
	WatchQty   bool     `json:"watch_qty"`
	WatchSizes []string `json:"watch_sizes,omitempty"`

	NotifyChannel string `json:"notify_channel"`
	NotifyEmail   string `json:"notify_email,omitempty"`

	IsActive         bool `json:"is_active"`
	IsDeleted        bool `json:"-"`
	CheckIntervalMin int  `json:"check_interval_min"`
	ErrorCount       int  `json:"error_count"`

	LastPrice   decimal.NullDecimal `json:"last_price,omitempty"`
	LastRating  decimal.NullDecimal `json:"last_rating,omitempty"`
	LastReviews *int                `json:"last_reviews,omitempty"`
	LastInStock *bool               `json:"last_in_stock,omitempty"`
	LastQty     *int                `json:"last_qty,omitempty"`
	LastSizes   []string            `json:"last_sizes,omitempty"`

	LastCheckedAt  *time.Time `json:"last_checked_at,omitempty"`
	LastNotifiedAt *time.Time `json:"last_notified_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`

	// Joined from monitor_users for the worker and alert delivery.
	UserTgID int64  `json:"-"`
	UserPlan string `json:"-"`
}

// Snapshot is one point-in-time read of a marketplace item. Produced by the
// fetcher, never mutated.
type Snapshot struct {
	WBItemID  int64               `json:"wb_item_id"`
	Title     string              `json:"title"`
	Price     decimal.NullDecimal `json:"price"`
	Rating    decimal.NullDecimal `json:"rating"`
	Reviews   *int                `json:"reviews,omitempty"`
	InStock   bool                `json:"in_stock"`
	TotalQty  *int                `json:"total_qty,omitempty"`
	Sizes     []string            `json:"sizes,omitempty"`
	Brand     string              `json:"brand,omitempty"`
	Entity    string              `json:"entity,omitempty"`
	SubjectID *int64              `json:"subject_id,omitempty"`
}

// EventKind tags a detected state change.
type EventKind string

const (
	EventPriceTarget  EventKind = "price_target"
	EventPriceDrop    EventKind = "price_drop"
	EventInStock      EventKind = "in_stock"
	EventQtyChanged   EventKind = "qty_changed"
	EventSizesAppear  EventKind = "sizes_appeared"
	EventSizesGone    EventKind = "sizes_gone"
	EventPausedErrors EventKind = "paused_error"
)

// Event is a user-notifiable change detected for a track during one cycle.
// It lives only until it is logged and queued for delivery.
type Event struct {
	Kind EventKind `json:"kind"`
	Text string    `json:"text"`
}

// LoggedEvent is an event that passed deduplication and is about to be
// committed to the alert log together with the cycle's track mutation.
type LoggedEvent struct {
	Kind EventKind `json:"kind"`
	Hash string    `json:"hash"`
	Text string    `json:"text"`
}

// CheckResult carries everything one successful track check mutates: the new
// snapshot row, the refreshed last_* fields and the deduplicated events.
// The repository commits it as a single transaction.
type CheckResult struct {
	TrackID   int64
	Snapshot  Snapshot
	Events    []LoggedEvent
	CheckedAt time.Time
}

// SimilarProduct is a cheaper functional equivalent found by the matching
// engine. Transient: persisted only in a short-TTL cache.
type SimilarProduct struct {
	WBItemID int64           `json:"wb_item_id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	URL      string          `json:"url"`
}

// RuntimeConfig is the single mutable settings row (id=1): check intervals
// per plan and the default similarity threshold.
type RuntimeConfig struct {
	FreeIntervalMin   int `json:"free_interval_min"`
	ProIntervalMin    int `json:"pro_interval_min"`
	CheapMatchPercent int `json:"cheap_match_percent"`
}
