package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/mkarpekin/wbwatch/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// Repository provides methods to interact with the users table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new user repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetOrCreate returns the user for a telegram id, creating a free-plan user
// on first contact.
func (r *Repository) GetOrCreate(ctx context.Context, tgUserID int64, username string) (model.User, error) {
	query := `
		INSERT INTO monitor_users (tg_user_id, username)
		VALUES ($1, $2)
		ON CONFLICT (tg_user_id) DO UPDATE SET username = EXCLUDED.username
		RETURNING id, tg_user_id, username, plan, pro_expires_at, created_at;
    `

	var u model.User
	err := r.db.QueryRowContext(ctx, query, tgUserID, username).Scan(
		&u.ID, &u.TgUserID, &u.Username, &u.Plan, &u.ProExpiresAt, &u.CreatedAt,
	)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get or create user: %w", err)
	}
	return u, nil
}

// GetByTgID retrieves a user by their telegram id.
func (r *Repository) GetByTgID(ctx context.Context, tgUserID int64) (model.User, error) {
	query := `
		SELECT id, tg_user_id, username, plan, pro_expires_at, created_at
		FROM monitor_users
		WHERE tg_user_id = $1;
    `

	var u model.User
	err := r.db.QueryRowContext(ctx, query, tgUserID).Scan(
		&u.ID, &u.TgUserID, &u.Username, &u.Plan, &u.ProExpiresAt, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}
