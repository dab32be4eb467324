package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/mkarpekin/wbwatch/internal/model"
)

func setupMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &dbpg.DB{Master: db}, mock
}

func userRow(id, tgID int64, plan string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "tg_user_id", "username", "plan", "pro_expires_at", "created_at"}).
		AddRow(id, tgID, "alice", plan, nil, time.Now())
}

func TestRepository_GetOrCreate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO monitor_users")).
		WithArgs(int64(42), "alice").
		WillReturnRows(userRow(7, 42, "free"))

	u, err := repo.GetOrCreate(context.Background(), 42, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, model.PlanFree, u.Plan)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByTgID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, tg_user_id, username, plan, pro_expires_at, created_at")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByTgID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
