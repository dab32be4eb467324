package track

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/mkarpekin/wbwatch/internal/model"
)

var ErrTrackNotFound = errors.New("track not found")

const trackColumns = `
	t.id, t.user_id, t.wb_item_id, t.url, t.title,
	t.target_price, t.target_drop_percent,
	t.watch_stock, t.watch_qty, t.watch_sizes,
	t.notify_channel, t.notify_email,
	t.is_active, t.check_interval_min, t.error_count,
	t.last_price, t.last_rating, t.last_reviews, t.last_in_stock, t.last_qty, t.last_sizes,
	t.last_checked_at, t.last_notified_at, t.created_at,
	u.tg_user_id, u.plan`

// Repository provides methods to interact with the tracks, snapshots and
// runtime config tables.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new track repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

func scanTrack(row interface{ Scan(...any) error }) (model.Track, error) {
	var t model.Track
	err := row.Scan(
		&t.ID, &t.UserID, &t.WBItemID, &t.URL, &t.Title,
		&t.TargetPrice, &t.TargetDropPercent,
		&t.WatchStock, &t.WatchQty, pq.Array(&t.WatchSizes),
		&t.NotifyChannel, &t.NotifyEmail,
		&t.IsActive, &t.CheckIntervalMin, &t.ErrorCount,
		&t.LastPrice, &t.LastRating, &t.LastReviews, &t.LastInStock, &t.LastQty, pq.Array(&t.LastSizes),
		&t.LastCheckedAt, &t.LastNotifiedAt, &t.CreatedAt,
		&t.UserTgID, &t.UserPlan,
	)
	return t, err
}

// CreateTrack inserts a new track together with its first snapshot in one
// transaction and returns the track ID.
func (r *Repository) CreateTrack(ctx context.Context, track model.Track, snap *model.Snapshot) (int64, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO monitor_tracks (
		    user_id, wb_item_id, url, title,
		    target_price, target_drop_percent, watch_stock, watch_qty, watch_sizes,
		    notify_channel, notify_email,
		    check_interval_min,
		    last_price, last_rating, last_reviews, last_in_stock, last_qty, last_sizes,
		    last_checked_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id;
    `

	now := time.Now()
	var id int64
	err = tx.QueryRowContext(
		ctx, query,
		track.UserID, track.WBItemID, track.URL, snap.Title,
		track.TargetPrice, track.TargetDropPercent, track.WatchStock, track.WatchQty, pq.Array(track.WatchSizes),
		track.NotifyChannel, track.NotifyEmail,
		track.CheckIntervalMin,
		snap.Price, snap.Rating, snap.Reviews, snap.InStock, snap.TotalQty, pq.Array(snap.Sizes),
		now,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create track: %w", err)
	}

	if err := insertSnapshot(ctx, tx, id, snap, now); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

// GetActiveTracks retrieves all active, non-deleted tracks joined with their
// owner's telegram id and plan.
func (r *Repository) GetActiveTracks(ctx context.Context) ([]model.Track, error) {
	query := `
		SELECT ` + trackColumns + `
		FROM monitor_tracks t
		JOIN monitor_users u ON u.id = t.user_id
		WHERE t.is_active AND NOT t.is_deleted
		ORDER BY t.id;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active tracks: %w", err)
	}
	defer rows.Close()

	var tracks []model.Track
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

// GetTracksByUser retrieves a user's non-deleted tracks, newest first.
func (r *Repository) GetTracksByUser(ctx context.Context, userID int64) ([]model.Track, error) {
	query := `
		SELECT ` + trackColumns + `
		FROM monitor_tracks t
		JOIN monitor_users u ON u.id = t.user_id
		WHERE t.user_id = $1 AND NOT t.is_deleted
		ORDER BY t.created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tracks for user: %w", err)
	}
	defer rows.Close()

	var tracks []model.Track
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

// GetTrackByID retrieves a single non-deleted track by its ID.
func (r *Repository) GetTrackByID(ctx context.Context, id int64) (model.Track, error) {
	query := `
		SELECT ` + trackColumns + `
		FROM monitor_tracks t
		JOIN monitor_users u ON u.id = t.user_id
		WHERE t.id = $1 AND NOT t.is_deleted;
    `

	t, err := scanTrack(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Track{}, ErrTrackNotFound
		}
		return model.Track{}, fmt.Errorf("failed to get track: %w", err)
	}
	return t, nil
}

// SetActive pauses or resumes a track. Resuming also resets the error count
// so a previously failing track gets a fresh backoff budget.
func (r *Repository) SetActive(ctx context.Context, id, userID int64, active bool) error {
	query := `
		UPDATE monitor_tracks
		SET is_active = $1,
		    error_count = CASE WHEN $1 THEN 0 ELSE error_count END
		WHERE id = $2 AND user_id = $3 AND NOT is_deleted;
    `

	res, err := r.db.ExecContext(ctx, query, active, id, userID)
	if err != nil {
		return fmt.Errorf("failed to update track: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrTrackNotFound
	}
	return nil
}

// SoftDelete marks a track deleted. The row and its history are kept.
func (r *Repository) SoftDelete(ctx context.Context, id, userID int64) error {
	query := `
		UPDATE monitor_tracks
		SET is_deleted = TRUE, is_active = FALSE
		WHERE id = $1 AND user_id = $2 AND NOT is_deleted;
    `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete track: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrTrackNotFound
	}
	return nil
}

func insertSnapshot(ctx context.Context, tx *sql.Tx, trackID int64, snap *model.Snapshot, checkedAt time.Time) error {
	query := `
		INSERT INTO monitor_snapshots (
		    track_id, wb_item_id, title, price, rating, reviews, in_stock, total_qty, sizes, checked_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `

	_, err := tx.ExecContext(
		ctx, query,
		trackID, snap.WBItemID, snap.Title, snap.Price, snap.Rating, snap.Reviews,
		snap.InStock, snap.TotalQty, pq.Array(snap.Sizes), checkedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}

// SaveCheckResult commits everything one successful check produced in a
// single transaction: the snapshot row, the refreshed last_* state with the
// error count reset, and the alert log records for deduplication.
func (r *Repository) SaveCheckResult(ctx context.Context, res model.CheckResult) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertSnapshot(ctx, tx, res.TrackID, &res.Snapshot, res.CheckedAt); err != nil {
		return err
	}

	var notifiedAt *time.Time
	if len(res.Events) > 0 {
		notifiedAt = &res.CheckedAt
	}

	query := `
		UPDATE monitor_tracks
		SET title = $1,
		    last_price = $2,
		    last_rating = $3,
		    last_reviews = $4,
		    last_in_stock = $5,
		    last_qty = $6,
		    last_sizes = $7,
		    error_count = 0,
		    last_checked_at = $8,
		    last_notified_at = COALESCE($9, last_notified_at)
		WHERE id = $10;
    `

	_, err = tx.ExecContext(
		ctx, query,
		res.Snapshot.Title, res.Snapshot.Price, res.Snapshot.Rating, res.Snapshot.Reviews,
		res.Snapshot.InStock, res.Snapshot.TotalQty, pq.Array(res.Snapshot.Sizes),
		res.CheckedAt, notifiedAt, res.TrackID,
	)
	if err != nil {
		return fmt.Errorf("failed to update track state: %w", err)
	}

	for _, event := range res.Events {
		logQuery := `
			INSERT INTO monitor_alerts_log (track_id, event_kind, event_hash, message, created_at)
			VALUES ($1, $2, $3, $4, $5);
	    `
		if _, err := tx.ExecContext(ctx, logQuery, res.TrackID, event.Kind, event.Hash, event.Text, res.CheckedAt); err != nil {
			return fmt.Errorf("failed to log alert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// IncrementErrorCount bumps a track's consecutive failure counter and stamps
// the check time, returning the new count.
func (r *Repository) IncrementErrorCount(ctx context.Context, id int64, checkedAt time.Time) (int, error) {
	query := `
		UPDATE monitor_tracks
		SET error_count = error_count + 1, last_checked_at = $1
		WHERE id = $2
		RETURNING error_count;
    `

	var count int
	if err := r.db.QueryRowContext(ctx, query, checkedAt, id).Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrTrackNotFound
		}
		return 0, fmt.Errorf("failed to increment error count: %w", err)
	}
	return count, nil
}

// DeactivateIfActive pauses a track only if it is still active, reporting
// whether this call was the one that flipped it. Concurrent workers racing
// on the same failing track produce exactly one pause alert.
func (r *Repository) DeactivateIfActive(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE monitor_tracks
		SET is_active = FALSE
		WHERE id = $1 AND is_active;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate track: %w", err)
	}

	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

// GetRuntimeConfig reads the single mutable settings row, creating it with
// defaults on first use.
func (r *Repository) GetRuntimeConfig(ctx context.Context) (model.RuntimeConfig, error) {
	insert := `
		INSERT INTO monitor_runtime_config (id, free_interval_min, pro_interval_min, cheap_match_percent)
		VALUES (1, 360, 60, 50)
		ON CONFLICT (id) DO NOTHING;
    `
	if _, err := r.db.ExecContext(ctx, insert); err != nil {
		return model.RuntimeConfig{}, fmt.Errorf("failed to seed runtime config: %w", err)
	}

	query := `
		SELECT free_interval_min, pro_interval_min, cheap_match_percent
		FROM monitor_runtime_config
		WHERE id = 1;
    `

	var cfg model.RuntimeConfig
	err := r.db.QueryRowContext(ctx, query).Scan(&cfg.FreeIntervalMin, &cfg.ProIntervalMin, &cfg.CheapMatchPercent)
	if err != nil {
		return model.RuntimeConfig{}, fmt.Errorf("failed to get runtime config: %w", err)
	}
	return cfg, nil
}

// ExpireProUsers downgrades users whose pro period lapsed and stretches their
// tracks back to the free-plan interval. Returns the number of downgraded
// users.
func (r *Repository) ExpireProUsers(ctx context.Context, now time.Time, freeIntervalMin int) (int64, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	downgrade := `
		UPDATE monitor_users
		SET plan = 'free', pro_expires_at = NULL
		WHERE plan = 'pro' AND pro_expires_at IS NOT NULL AND pro_expires_at < $1
		RETURNING id;
    `

	rows, err := tx.QueryContext(ctx, downgrade, now)
	if err != nil {
		return 0, fmt.Errorf("failed to expire pro users: %w", err)
	}

	var userIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, err
		}
		userIDs = append(userIDs, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	if len(userIDs) > 0 {
		stretch := `
			UPDATE monitor_tracks
			SET check_interval_min = $1
			WHERE user_id = ANY($2) AND NOT is_deleted;
	    `
		if _, err := tx.ExecContext(ctx, stretch, freeIntervalMin, pq.Array(userIDs)); err != nil {
			return 0, fmt.Errorf("failed to stretch track intervals: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return int64(len(userIDs)), nil
}
