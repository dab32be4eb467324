package worker

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mkarpekin/wbwatch/internal/model"
	"github.com/mkarpekin/wbwatch/internal/monitor"
	"github.com/mkarpekin/wbwatch/internal/rabbitmq/queue"
)

//go:generate mockgen -source=monitor.go -destination=../mocks/worker/mock.go -package=mocks

type trackStore interface {
	GetActiveTracks(ctx context.Context) ([]model.Track, error)
	SaveCheckResult(ctx context.Context, res model.CheckResult) error
	IncrementErrorCount(ctx context.Context, id int64, checkedAt time.Time) (int, error)
	DeactivateIfActive(ctx context.Context, id int64) (bool, error)
	GetRuntimeConfig(ctx context.Context) (model.RuntimeConfig, error)
	ExpireProUsers(ctx context.Context, now time.Time, freeIntervalMin int) (int64, error)
}

type alertLog interface {
	IsDuplicate(ctx context.Context, trackID int64, hash string, window time.Duration) (bool, error)
	Append(ctx context.Context, trackID int64, kind, hash, message string) error
}

type productFetcher interface {
	FetchProduct(ctx context.Context, itemID int64) (*model.Snapshot, error)
}

type alertPublisher interface {
	Publish(msg queue.AlertMessage, strategy retry.Strategy) error
}

type heartbeat interface {
	MarkCycle(ctx context.Context, finishedAt time.Time, cycle time.Duration) error
}

// Config tunes the monitoring loop.
type Config struct {
	Tick        time.Duration `mapstructure:"tick"`
	DedupWindow time.Duration `mapstructure:"dedup_window"`
	ErrorLimit  int           `mapstructure:"error_limit"`
	WorkerCount int           `mapstructure:"worker_count"`
}

func (c *Config) applyDefaults() {
	if c.Tick <= 0 {
		c.Tick = time.Minute
	}
	if c.DedupWindow <= 0 {
		c.DedupWindow = 24 * time.Hour
	}
	if c.ErrorLimit <= 0 {
		c.ErrorLimit = 5
	}
	if c.WorkerCount <= 0 {
		c.WorkerCount = 4
	}
}

// Monitor is the periodic checking loop: every tick it picks the due tracks,
// fetches fresh snapshots, detects changes and queues deduplicated alerts.
// One failing track never poisons the rest of the cycle.
type Monitor struct {
	cfg      Config
	tracks   trackStore
	alerts   alertLog
	fetcher  productFetcher
	queue    alertPublisher
	state    heartbeat
	strategy retry.Strategy
}

func NewMonitor(
	cfg Config,
	tracks trackStore,
	alerts alertLog,
	fetcher productFetcher,
	alertQueue alertPublisher,
	state heartbeat,
	strategy retry.Strategy,
) *Monitor {
	cfg.applyDefaults()
	return &Monitor{
		cfg:      cfg,
		tracks:   tracks,
		alerts:   alerts,
		fetcher:  fetcher,
		queue:    alertQueue,
		state:    state,
		strategy: strategy,
	}
}

// Run blocks until the context is cancelled. The pro-expiry pass runs once at
// startup and then daily.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.cfg.Tick)
	defer ticker.Stop()

	daily := time.NewTicker(24 * time.Hour)
	defer daily.Stop()

	m.expireProUsers(ctx)
	m.runCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Print("monitor stopped")
			return
		case <-daily.C:
			m.expireProUsers(ctx)
		case <-ticker.C:
			m.runCycle(ctx)
		}
	}
}

func (m *Monitor) runCycle(ctx context.Context) {
	start := time.Now()

	tracks, err := m.tracks.GetActiveTracks(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to load active tracks")
		return
	}

	due := monitor.Due(tracks, start)
	if len(due) == 0 {
		m.markCycle(ctx, start)
		return
	}
	zlog.Logger.Info().Int("due", len(due)).Int("active", len(tracks)).Msg("starting check cycle")

	trackChan := make(chan model.Track)
	var wg sync.WaitGroup

	wg.Add(m.cfg.WorkerCount)
	for i := 0; i < m.cfg.WorkerCount; i++ {
		go func() {
			defer wg.Done()
			for track := range trackChan {
				m.checkTrack(ctx, track)
			}
		}()
	}

	for _, track := range due {
		select {
		case <-ctx.Done():
			close(trackChan)
			wg.Wait()
			return
		case trackChan <- track:
		}
	}
	close(trackChan)
	wg.Wait()

	m.markCycle(ctx, start)
}

func (m *Monitor) markCycle(ctx context.Context, start time.Time) {
	if err := m.state.MarkCycle(ctx, time.Now(), time.Since(start)); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to record heartbeat")
	}
}

// checkTrack runs one track's check end to end. A missing card counts as a
// failed check and feeds the error backoff like any fetch error.
func (m *Monitor) checkTrack(ctx context.Context, track model.Track) {
	now := time.Now()

	snap, err := m.fetcher.FetchProduct(ctx, track.WBItemID)
	if err != nil {
		zlog.Logger.Warn().Err(err).Int64("track_id", track.ID).Msg("check failed")
		m.handleFailure(ctx, track, now)
		return
	}

	events := monitor.Detect(&track, snap)

	var logged []model.LoggedEvent
	for _, event := range events {
		hash := monitor.EventHash(track.ID, event.Text)
		dup, err := m.alerts.IsDuplicate(ctx, track.ID, hash, m.cfg.DedupWindow)
		if err != nil {
			zlog.Logger.Error().Err(err).Int64("track_id", track.ID).Msg("dedup check failed, skipping event")
			continue
		}
		if dup {
			continue
		}
		logged = append(logged, model.LoggedEvent{Kind: event.Kind, Hash: hash, Text: event.Text})
	}

	res := model.CheckResult{
		TrackID:   track.ID,
		Snapshot:  *snap,
		Events:    logged,
		CheckedAt: now,
	}
	if err := m.tracks.SaveCheckResult(ctx, res); err != nil {
		zlog.Logger.Error().Err(err).Int64("track_id", track.ID).Msg("failed to save check result")
		return
	}

	for _, event := range logged {
		m.publish(track, event.Text)
	}
}

// publish queues one alert on the channel the track was created with.
func (m *Monitor) publish(track model.Track, text string) {
	channel := track.NotifyChannel
	if channel == "" {
		channel = "telegram"
	}

	to := strconv.FormatInt(track.UserTgID, 10)
	if channel == "email" {
		to = track.NotifyEmail
	}

	msg := queue.AlertMessage{
		ID:      uuid.New(),
		TrackID: track.ID,
		To:      to,
		Text:    text,
		Channel: channel,
	}
	if err := m.queue.Publish(msg, m.strategy); err != nil {
		zlog.Logger.Error().Err(err).Int64("track_id", track.ID).Msg("failed to publish alert")
	}
}

// handleFailure bumps the consecutive error counter and, at the limit,
// pauses the track with a single notification. The guarded deactivation
// keeps racing cycles from notifying twice.
func (m *Monitor) handleFailure(ctx context.Context, track model.Track, now time.Time) {
	count, err := m.tracks.IncrementErrorCount(ctx, track.ID, now)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("track_id", track.ID).Msg("failed to increment error count")
		return
	}
	if count < m.cfg.ErrorLimit {
		return
	}

	flipped, err := m.tracks.DeactivateIfActive(ctx, track.ID)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("track_id", track.ID).Msg("failed to deactivate track")
		return
	}
	if !flipped {
		return
	}

	zlog.Logger.Warn().Int64("track_id", track.ID).Int("errors", count).Msg("track paused after repeated errors")

	text := monitor.PausedMessage(&track, count)
	hash := monitor.EventHash(track.ID, text)
	if err := m.alerts.Append(ctx, track.ID, string(model.EventPausedErrors), hash, text); err != nil {
		zlog.Logger.Error().Err(err).Int64("track_id", track.ID).Msg("failed to log pause alert")
	}
	m.publish(track, text)
}

func (m *Monitor) expireProUsers(ctx context.Context) {
	cfg, err := m.tracks.GetRuntimeConfig(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to load runtime config")
		return
	}

	downgraded, err := m.tracks.ExpireProUsers(ctx, time.Now(), cfg.FreeIntervalMin)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to expire pro users")
		return
	}
	if downgraded > 0 {
		zlog.Logger.Info().Int64("users", downgraded).Msg("downgraded expired pro users")
	}
}
