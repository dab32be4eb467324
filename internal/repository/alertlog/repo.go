package alertlog

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
)

// Repository provides methods to interact with the alerts log table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new alert log repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// IsDuplicate reports whether an alert with the same hash was already logged
// for the track within the dedup window.
func (r *Repository) IsDuplicate(ctx context.Context, trackID int64, hash string, window time.Duration) (bool, error) {
	query := `
		SELECT EXISTS (
		    SELECT 1
		    FROM monitor_alerts_log
		    WHERE track_id = $1 AND event_hash = $2 AND created_at > $3
		);
    `

	var exists bool
	err := r.db.QueryRowContext(ctx, query, trackID, hash, time.Now().Add(-window)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check alert log: %w", err)
	}
	return exists, nil
}

// Append records a delivered or queued alert outside of a check transaction.
// Used by the similar-search audit trail and the pause notification.
func (r *Repository) Append(ctx context.Context, trackID int64, kind, hash, message string) error {
	query := `
		INSERT INTO monitor_alerts_log (track_id, event_kind, event_hash, message, created_at)
		VALUES ($1, $2, $3, $4, $5);
    `

	if _, err := r.db.ExecContext(ctx, query, trackID, kind, hash, message, time.Now()); err != nil {
		return fmt.Errorf("failed to append alert log: %w", err)
	}
	return nil
}
