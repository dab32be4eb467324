package alertlog

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func setupMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &dbpg.DB{Master: db}, mock
}

func TestRepository_IsDuplicate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(int64(5), "abc123", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	dup, err := repo.IsDuplicate(context.Background(), 5, "abc123", 24*time.Hour)
	require.NoError(t, err)
	assert.True(t, dup)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Append(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO monitor_alerts_log")).
		WithArgs(int64(5), "cheap_scan", "abc123", "cheap scan: 2 matches", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Append(context.Background(), 5, "cheap_scan", "abc123", "cheap scan: 2 matches")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
