package track

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/mkarpekin/wbwatch/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

var trackRowColumns = []string{
	"id", "user_id", "wb_item_id", "url", "title",
	"target_price", "target_drop_percent",
	"watch_stock", "watch_qty", "watch_sizes",
	"notify_channel", "notify_email",
	"is_active", "check_interval_min", "error_count",
	"last_price", "last_rating", "last_reviews", "last_in_stock", "last_qty", "last_sizes",
	"last_checked_at", "last_notified_at", "created_at",
	"tg_user_id", "plan",
}

func addTrackRow(rows *sqlmock.Rows, id int64) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, int64(1), int64(123456789), "https://www.wildberries.ru/catalog/123456789/detail.aspx", "Кроссовки",
		"1800", 10,
		true, false, "{}",
		"telegram", "",
		true, 360, 0,
		"2000", "4.8", 120, true, 35, "{M,L}",
		now, nil, now,
		int64(555001), "free",
	)
}

func TestGetActiveTracks(t *testing.T) {
	repo, mock := setupMockDB(t)

	rows := sqlmock.NewRows(trackRowColumns)
	addTrackRow(rows, 1)
	addTrackRow(rows, 2)

	mock.ExpectQuery("SELECT(.|\n)+FROM monitor_tracks t(.|\n)+WHERE t.is_active AND NOT t.is_deleted").
		WillReturnRows(rows)

	tracks, err := repo.GetActiveTracks(context.Background())
	require.NoError(t, err)
	require.Len(t, tracks, 2)

	assert.Equal(t, int64(1), tracks[0].ID)
	assert.Equal(t, int64(555001), tracks[0].UserTgID)
	assert.Equal(t, model.PlanFree, tracks[0].UserPlan)
	assert.Equal(t, "telegram", tracks[0].NotifyChannel)
	assert.True(t, tracks[0].LastPrice.Valid)
	assert.Equal(t, "2000", tracks[0].LastPrice.Decimal.String())
	assert.Equal(t, []string{"M", "L"}, tracks[0].LastSizes)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetActive(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec("UPDATE monitor_tracks").
		WithArgs(false, int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetActive(context.Background(), 5, 1, false)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec("UPDATE monitor_tracks").
		WithArgs(false, int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.SetActive(context.Background(), 5, 1, false)
	assert.ErrorIs(t, err, ErrTrackNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementErrorCount(t *testing.T) {
	repo, mock := setupMockDB(t)

	checkedAt := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`
		UPDATE monitor_tracks
		SET error_count = error_count + 1, last_checked_at = $1
		WHERE id = $2
		RETURNING error_count;
    `)).
		WithArgs(checkedAt, int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"error_count"}).AddRow(3))

	count, err := repo.IncrementErrorCount(context.Background(), 7, checkedAt)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivateIfActive(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec("UPDATE monitor_tracks").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	flipped, err := repo.DeactivateIfActive(context.Background(), 7)
	assert.NoError(t, err)
	assert.True(t, flipped)

	// Already inactive: another worker won the race, no second pause alert.
	mock.ExpectExec("UPDATE monitor_tracks").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	flipped, err = repo.DeactivateIfActive(context.Background(), 7)
	assert.NoError(t, err)
	assert.False(t, flipped)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCheckResult(t *testing.T) {
	repo, mock := setupMockDB(t)

	qty := 35
	res := model.CheckResult{
		TrackID: 9,
		Snapshot: model.Snapshot{
			WBItemID: 123456789,
			Title:    "Кроссовки",
			Price:    decimal.NullDecimal{Decimal: decimal.NewFromInt(1750), Valid: true},
			InStock:  true,
			TotalQty: &qty,
			Sizes:    []string{"M", "L"},
		},
		Events: []model.LoggedEvent{
			{Kind: model.EventPriceDrop, Hash: "abc123", Text: "📉 Цена упала"},
		},
		CheckedAt: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO monitor_snapshots").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE monitor_tracks").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO monitor_alerts_log").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.SaveCheckResult(context.Background(), res)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRuntimeConfig(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec("INSERT INTO monitor_runtime_config").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT free_interval_min, pro_interval_min, cheap_match_percent").
		WillReturnRows(sqlmock.NewRows([]string{"free_interval_min", "pro_interval_min", "cheap_match_percent"}).
			AddRow(360, 60, 50))

	cfg, err := repo.GetRuntimeConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.RuntimeConfig{FreeIntervalMin: 360, ProIntervalMin: 60, CheapMatchPercent: 50}, cfg)
	assert.NoError(t, mock.ExpectationsWereMet())
}
