package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/mkarpekin/wbwatch/internal/mocks/worker"
	"github.com/mkarpekin/wbwatch/internal/model"
	"github.com/mkarpekin/wbwatch/internal/rabbitmq/queue"
)

func newTestMonitor(t *testing.T) (*Monitor, *mocks.MocktrackStore, *mocks.MockalertLog, *mocks.MockproductFetcher, *mocks.MockalertPublisher, *mocks.Mockheartbeat) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tracks := mocks.NewMocktrackStore(ctrl)
	alerts := mocks.NewMockalertLog(ctrl)
	fetcher := mocks.NewMockproductFetcher(ctrl)
	publisher := mocks.NewMockalertPublisher(ctrl)
	state := mocks.NewMockheartbeat(ctrl)

	m := NewMonitor(Config{ErrorLimit: 5}, tracks, alerts, fetcher, publisher, state, retry.Strategy{Attempts: 1, Delay: time.Millisecond})
	return m, tracks, alerts, fetcher, publisher, state
}

func testTrack() model.Track {
	return model.Track{
		ID:          10,
		UserID:      1,
		WBItemID:    123456789,
		Title:       "Кроссовки",
		URL:         "https://www.wildberries.ru/catalog/123456789/detail.aspx",
		TargetPrice: decimal.NullDecimal{Decimal: decimal.NewFromInt(1800), Valid: true},
		IsActive:    true,
		UserTgID:    555001,
		UserPlan:    model.PlanFree,
	}
}

func TestMonitor_CheckTrack_PublishesAlert(t *testing.T) {
	m, tracks, alerts, fetcher, publisher, _ := newTestMonitor(t)

	track := testTrack()
	snap := &model.Snapshot{
		WBItemID: track.WBItemID,
		Title:    track.Title,
		Price:    decimal.NullDecimal{Decimal: decimal.NewFromInt(1750), Valid: true},
	}

	fetcher.EXPECT().FetchProduct(gomock.Any(), track.WBItemID).Return(snap, nil)
	alerts.EXPECT().IsDuplicate(gomock.Any(), track.ID, gomock.Any(), 24*time.Hour).Return(false, nil)

	var saved model.CheckResult
	tracks.EXPECT().SaveCheckResult(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, res model.CheckResult) error {
			saved = res
			return nil
		},
	)
	var published queue.AlertMessage
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(msg queue.AlertMessage, _ retry.Strategy) error {
			published = msg
			return nil
		},
	)

	m.checkTrack(context.Background(), track)

	require.Len(t, saved.Events, 1)
	assert.Equal(t, model.EventPriceTarget, saved.Events[0].Kind)
	assert.Len(t, saved.Events[0].Hash, 48)
	assert.Equal(t, track.ID, saved.TrackID)
	assert.Equal(t, "telegram", published.Channel)
	assert.Equal(t, "555001", published.To)
}

func TestMonitor_CheckTrack_EmailChannel(t *testing.T) {
	m, tracks, alerts, fetcher, publisher, _ := newTestMonitor(t)

	track := testTrack()
	track.NotifyChannel = "email"
	track.NotifyEmail = "alice@example.com"
	snap := &model.Snapshot{
		WBItemID: track.WBItemID,
		Title:    track.Title,
		Price:    decimal.NullDecimal{Decimal: decimal.NewFromInt(1750), Valid: true},
	}

	fetcher.EXPECT().FetchProduct(gomock.Any(), track.WBItemID).Return(snap, nil)
	alerts.EXPECT().IsDuplicate(gomock.Any(), track.ID, gomock.Any(), gomock.Any()).Return(false, nil)
	tracks.EXPECT().SaveCheckResult(gomock.Any(), gomock.Any()).Return(nil)

	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(msg queue.AlertMessage, _ retry.Strategy) error {
			assert.Equal(t, "email", msg.Channel)
			assert.Equal(t, "alice@example.com", msg.To)
			return nil
		},
	)

	m.checkTrack(context.Background(), track)
}

func TestMonitor_CheckTrack_DuplicateSuppressed(t *testing.T) {
	m, tracks, alerts, fetcher, _, _ := newTestMonitor(t)

	track := testTrack()
	snap := &model.Snapshot{
		WBItemID: track.WBItemID,
		Price:    decimal.NullDecimal{Decimal: decimal.NewFromInt(1750), Valid: true},
	}

	fetcher.EXPECT().FetchProduct(gomock.Any(), track.WBItemID).Return(snap, nil)
	alerts.EXPECT().IsDuplicate(gomock.Any(), track.ID, gomock.Any(), gomock.Any()).Return(true, nil)

	// State still advances, just with no events and no publish.
	tracks.EXPECT().SaveCheckResult(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, res model.CheckResult) error {
			assert.Empty(t, res.Events)
			return nil
		},
	)

	m.checkTrack(context.Background(), track)
}

func TestMonitor_CheckTrack_FailureBelowLimit(t *testing.T) {
	m, tracks, _, fetcher, _, _ := newTestMonitor(t)

	track := testTrack()
	fetcher.EXPECT().FetchProduct(gomock.Any(), track.WBItemID).Return(nil, errors.New("timeout"))
	tracks.EXPECT().IncrementErrorCount(gomock.Any(), track.ID, gomock.Any()).Return(2, nil)

	m.checkTrack(context.Background(), track)
}

func TestMonitor_CheckTrack_FailureAtLimitPauses(t *testing.T) {
	m, tracks, alerts, fetcher, publisher, _ := newTestMonitor(t)

	track := testTrack()
	fetcher.EXPECT().FetchProduct(gomock.Any(), track.WBItemID).Return(nil, errors.New("timeout"))
	tracks.EXPECT().IncrementErrorCount(gomock.Any(), track.ID, gomock.Any()).Return(5, nil)
	tracks.EXPECT().DeactivateIfActive(gomock.Any(), track.ID).Return(true, nil)
	alerts.EXPECT().Append(gomock.Any(), track.ID, string(model.EventPausedErrors), gomock.Any(), gomock.Any()).Return(nil)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	m.checkTrack(context.Background(), track)
}

func TestMonitor_CheckTrack_PauseRaceLost(t *testing.T) {
	m, tracks, _, fetcher, _, _ := newTestMonitor(t)

	track := testTrack()
	fetcher.EXPECT().FetchProduct(gomock.Any(), track.WBItemID).Return(nil, errors.New("timeout"))
	tracks.EXPECT().IncrementErrorCount(gomock.Any(), track.ID, gomock.Any()).Return(6, nil)
	// Another cycle already paused the track: no alert, no publish.
	tracks.EXPECT().DeactivateIfActive(gomock.Any(), track.ID).Return(false, nil)

	m.checkTrack(context.Background(), track)
}

func TestMonitor_RunCycle_SkipsNotDue(t *testing.T) {
	m, tracks, _, _, _, state := newTestMonitor(t)

	recent := time.Now().Add(-time.Minute)
	tracks.EXPECT().GetActiveTracks(gomock.Any()).Return([]model.Track{
		{ID: 1, CheckIntervalMin: 60, LastCheckedAt: &recent},
	}, nil)
	state.EXPECT().MarkCycle(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	m.runCycle(context.Background())
}
