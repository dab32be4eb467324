package track

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/zlog"

	"github.com/mkarpekin/wbwatch/internal/model"
	"github.com/mkarpekin/wbwatch/internal/monitor"
	"github.com/mkarpekin/wbwatch/internal/similar"
	"github.com/mkarpekin/wbwatch/internal/wbapi"
)

var (
	ErrInvalidURL    = errors.New("no marketplace item id in url")
	ErrItemNotFound  = errors.New("marketplace item not found")
	ErrForbidden     = errors.New("track belongs to another user")
	ErrEmailRequired = errors.New("email address required for email channel")
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/track/mock.go -package=mocks

type trackRepository interface {
	CreateTrack(ctx context.Context, track model.Track, snap *model.Snapshot) (int64, error)
	GetTracksByUser(ctx context.Context, userID int64) ([]model.Track, error)
	GetTrackByID(ctx context.Context, id int64) (model.Track, error)
	SetActive(ctx context.Context, id, userID int64, active bool) error
	SoftDelete(ctx context.Context, id, userID int64) error
	GetRuntimeConfig(ctx context.Context) (model.RuntimeConfig, error)
}

type userRepository interface {
	GetOrCreate(ctx context.Context, tgUserID int64, username string) (model.User, error)
	GetByTgID(ctx context.Context, tgUserID int64) (model.User, error)
}

type alertLogRepository interface {
	Append(ctx context.Context, trackID int64, kind, hash, message string) error
}

type productFetcher interface {
	FetchProduct(ctx context.Context, itemID int64) (*model.Snapshot, error)
}

type similarEngine interface {
	FindCheaper(ctx context.Context, ref *model.Snapshot, opts similar.Options) []model.SimilarProduct
	FindCheaperViaWeb(ctx context.Context, ref *model.Snapshot, opts similar.Options) []model.SimilarProduct
}

type similarCache interface {
	Get(ctx context.Context, trackID int64) ([]model.SimilarProduct, bool, error)
	Set(ctx context.Context, trackID int64, items []model.SimilarProduct) error
}

// Notifier delivers one rendered message over one channel.
type Notifier interface {
	Send(to string, msg string) error
}

type Service struct {
	tracks    trackRepository
	users     userRepository
	alerts    alertLogRepository
	fetcher   productFetcher
	engine    similarEngine
	similar   similarCache
	notifiers map[string]Notifier
}

func NewService(
	tracks trackRepository,
	users userRepository,
	alerts alertLogRepository,
	fetcher productFetcher,
	engine similarEngine,
	similarResults similarCache,
	notifiers map[string]Notifier,
) *Service {
	return &Service{
		tracks:    tracks,
		users:     users,
		alerts:    alerts,
		fetcher:   fetcher,
		engine:    engine,
		similar:   similarResults,
		notifiers: notifiers,
	}
}

// CreateTrackInput is everything a user supplies when subscribing to an item.
type CreateTrackInput struct {
	TgUserID          int64
	Username          string
	URL               string
	TargetPrice       string
	TargetDropPercent int
	WatchStock        bool
	WatchQty          bool
	WatchSizes        []string
	Channel           string
	Email             string
}

// CreateTrack subscribes a user to an item. The item card is fetched up
// front: a dead link fails here, not silently in the first check cycle.
func (s *Service) CreateTrack(ctx context.Context, in CreateTrackInput) (model.Track, error) {
	itemID := wbapi.ExtractItemID(in.URL)
	if itemID == 0 {
		return model.Track{}, ErrInvalidURL
	}

	channel := in.Channel
	if channel == "" {
		channel = "telegram"
	}
	if channel == "email" && in.Email == "" {
		return model.Track{}, ErrEmailRequired
	}

	user, err := s.users.GetOrCreate(ctx, in.TgUserID, in.Username)
	if err != nil {
		return model.Track{}, fmt.Errorf("resolve user: %w", err)
	}

	snap, err := s.fetcher.FetchProduct(ctx, itemID)
	if err != nil {
		if errors.Is(err, wbapi.ErrNotFound) {
			return model.Track{}, ErrItemNotFound
		}
		return model.Track{}, fmt.Errorf("fetch product: %w", err)
	}

	cfg, err := s.tracks.GetRuntimeConfig(ctx)
	if err != nil {
		return model.Track{}, fmt.Errorf("load runtime config: %w", err)
	}
	interval := cfg.FreeIntervalMin
	if user.Plan == model.PlanPro {
		interval = cfg.ProIntervalMin
	}

	track := model.Track{
		UserID:            user.ID,
		WBItemID:          itemID,
		URL:               wbapi.ProductURL(itemID),
		Title:             snap.Title,
		TargetPrice:       parsePrice(in.TargetPrice),
		TargetDropPercent: in.TargetDropPercent,
		WatchStock:        in.WatchStock,
		WatchQty:          in.WatchQty,
		WatchSizes:        in.WatchSizes,
		NotifyChannel:     channel,
		NotifyEmail:       in.Email,
		IsActive:          true,
		CheckIntervalMin:  interval,
	}

	id, err := s.tracks.CreateTrack(ctx, track, snap)
	if err != nil {
		return model.Track{}, fmt.Errorf("create track: %w", err)
	}

	created, err := s.tracks.GetTrackByID(ctx, id)
	if err != nil {
		return model.Track{}, fmt.Errorf("reload track: %w", err)
	}
	return created, nil
}

// GetTracks lists a user's tracks, newest first.
func (s *Service) GetTracks(ctx context.Context, tgUserID int64) ([]model.Track, error) {
	user, err := s.users.GetByTgID(ctx, tgUserID)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	return s.tracks.GetTracksByUser(ctx, user.ID)
}

// GetTrack returns one track after an ownership check.
func (s *Service) GetTrack(ctx context.Context, tgUserID, trackID int64) (model.Track, error) {
	user, err := s.users.GetByTgID(ctx, tgUserID)
	if err != nil {
		return model.Track{}, fmt.Errorf("resolve user: %w", err)
	}

	track, err := s.tracks.GetTrackByID(ctx, trackID)
	if err != nil {
		return model.Track{}, err
	}
	if track.UserID != user.ID {
		return model.Track{}, ErrForbidden
	}
	return track, nil
}

// SetActive pauses or resumes a user's track.
func (s *Service) SetActive(ctx context.Context, tgUserID, trackID int64, active bool) error {
	user, err := s.users.GetByTgID(ctx, tgUserID)
	if err != nil {
		return fmt.Errorf("resolve user: %w", err)
	}
	return s.tracks.SetActive(ctx, trackID, user.ID, active)
}

// DeleteTrack soft-deletes a user's track, keeping its history.
func (s *Service) DeleteTrack(ctx context.Context, tgUserID, trackID int64) error {
	user, err := s.users.GetByTgID(ctx, tgUserID)
	if err != nil {
		return fmt.Errorf("resolve user: %w", err)
	}
	return s.tracks.SoftDelete(ctx, trackID, user.ID)
}

// FindCheaper looks for cheaper equivalents of a tracked item. Results are
// cached per track for a few minutes; a repeat request within the TTL is
// answered without touching the marketplace.
func (s *Service) FindCheaper(ctx context.Context, tgUserID, trackID int64, limit int) ([]model.SimilarProduct, error) {
	track, err := s.GetTrack(ctx, tgUserID, trackID)
	if err != nil {
		return nil, err
	}

	if cached, ok, err := s.similar.Get(ctx, trackID); err != nil {
		zlog.Logger.Error().Err(err).Int64("track_id", trackID).Msg("failed to read similar cache")
	} else if ok {
		return cached, nil
	}

	ref := s.referenceSnapshot(ctx, &track)
	if !ref.Price.Valid {
		return []model.SimilarProduct{}, nil
	}

	cfg, err := s.tracks.GetRuntimeConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load runtime config: %w", err)
	}

	opts := similar.Options{
		MaxPrice:     ref.Price.Decimal,
		ExcludeID:    track.WBItemID,
		MatchPercent: cfg.CheapMatchPercent,
		Limit:        limit,
	}

	items := s.engine.FindCheaper(ctx, ref, opts)
	if len(items) == 0 {
		items = s.engine.FindCheaperViaWeb(ctx, ref, opts)
	}
	if items == nil {
		items = []model.SimilarProduct{}
	}

	if err := s.similar.Set(ctx, trackID, items); err != nil {
		zlog.Logger.Error().Err(err).Int64("track_id", trackID).Msg("failed to cache similar results")
	}

	scanNote := fmt.Sprintf("cheap scan: %d matches under %s", len(items), ref.Price.Decimal.String())
	if err := s.alerts.Append(ctx, trackID, "cheap_scan", monitor.EventHash(trackID, scanNote), scanNote); err != nil {
		zlog.Logger.Error().Err(err).Int64("track_id", trackID).Msg("failed to log cheap scan")
	}

	return items, nil
}

// referenceSnapshot prefers a live card; when the marketplace is unreachable
// the last persisted state still lets the search proceed.
func (s *Service) referenceSnapshot(ctx context.Context, track *model.Track) *model.Snapshot {
	snap, err := s.fetcher.FetchProduct(ctx, track.WBItemID)
	if err == nil {
		return snap
	}
	zlog.Logger.Warn().Err(err).Int64("item_id", track.WBItemID).Msg("using last known state as reference")

	return &model.Snapshot{
		WBItemID: track.WBItemID,
		Title:    track.Title,
		Price:    track.LastPrice,
		Rating:   track.LastRating,
		Reviews:  track.LastReviews,
		Sizes:    track.LastSizes,
	}
}

func parsePrice(raw string) decimal.NullDecimal {
	if raw == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.Sign() <= 0 {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// Send delivers a message over the named channel.
func (s *Service) Send(to, message, channel string) error {
	notifier, ok := s.notifiers[channel]
	if !ok {
		return fmt.Errorf("unknown channel %s", channel)
	}

	err := notifier.Send(to, message)
	if err != nil {
		return fmt.Errorf("send alert: %w", err)
	}

	return nil
}
