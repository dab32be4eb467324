package track

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/mkarpekin/wbwatch/internal/mocks/service/track"
	"github.com/mkarpekin/wbwatch/internal/model"
	"github.com/mkarpekin/wbwatch/internal/similar"
	"github.com/mkarpekin/wbwatch/internal/wbapi"
)

func TestService_CreateTrack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracksMock := mocks.NewMocktrackRepository(ctrl)
	usersMock := mocks.NewMockuserRepository(ctrl)
	fetcherMock := mocks.NewMockproductFetcher(ctrl)

	svc := NewService(tracksMock, usersMock, nil, fetcherMock, nil, nil, nil)

	user := model.User{ID: 7, TgUserID: 42, Plan: model.PlanPro}
	snap := &model.Snapshot{
		WBItemID: 12345,
		Title:    "Умные часы Xiaomi Smart Band 8",
		Price:    decimal.NullDecimal{Decimal: decimal.NewFromInt(2990), Valid: true},
	}

	usersMock.EXPECT().GetOrCreate(gomock.Any(), int64(42), "alice").Return(user, nil)
	fetcherMock.EXPECT().FetchProduct(gomock.Any(), int64(12345)).Return(snap, nil)
	tracksMock.EXPECT().GetRuntimeConfig(gomock.Any()).Return(model.RuntimeConfig{
		FreeIntervalMin:   360,
		ProIntervalMin:    60,
		CheapMatchPercent: 50,
	}, nil)
	tracksMock.EXPECT().CreateTrack(gomock.Any(), gomock.Any(), snap).DoAndReturn(
		func(_ context.Context, track model.Track, _ *model.Snapshot) (int64, error) {
			assert.Equal(t, int64(7), track.UserID)
			assert.Equal(t, int64(12345), track.WBItemID)
			assert.Equal(t, snap.Title, track.Title)
			assert.Equal(t, 60, track.CheckIntervalMin)
			assert.Equal(t, "telegram", track.NotifyChannel)
			assert.True(t, track.IsActive)
			assert.True(t, track.TargetPrice.Valid)
			assert.Equal(t, "2500", track.TargetPrice.Decimal.String())
			return 99, nil
		},
	)
	tracksMock.EXPECT().GetTrackByID(gomock.Any(), int64(99)).Return(model.Track{ID: 99, UserID: 7}, nil)

	created, err := svc.CreateTrack(context.Background(), CreateTrackInput{
		TgUserID:    42,
		Username:    "alice",
		URL:         "https://www.wildberries.ru/catalog/12345/detail.aspx",
		TargetPrice: "2500",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), created.ID)
}

func TestService_CreateTrack_EmailChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracksMock := mocks.NewMocktrackRepository(ctrl)
	usersMock := mocks.NewMockuserRepository(ctrl)
	fetcherMock := mocks.NewMockproductFetcher(ctrl)

	svc := NewService(tracksMock, usersMock, nil, fetcherMock, nil, nil, nil)

	snap := &model.Snapshot{WBItemID: 12345, Title: "Кроссовки"}

	usersMock.EXPECT().GetOrCreate(gomock.Any(), int64(42), "").Return(model.User{ID: 7}, nil)
	fetcherMock.EXPECT().FetchProduct(gomock.Any(), int64(12345)).Return(snap, nil)
	tracksMock.EXPECT().GetRuntimeConfig(gomock.Any()).Return(model.RuntimeConfig{FreeIntervalMin: 360}, nil)
	tracksMock.EXPECT().CreateTrack(gomock.Any(), gomock.Any(), snap).DoAndReturn(
		func(_ context.Context, track model.Track, _ *model.Snapshot) (int64, error) {
			assert.Equal(t, "email", track.NotifyChannel)
			assert.Equal(t, "alice@example.com", track.NotifyEmail)
			return 99, nil
		},
	)
	tracksMock.EXPECT().GetTrackByID(gomock.Any(), int64(99)).Return(model.Track{ID: 99}, nil)

	_, err := svc.CreateTrack(context.Background(), CreateTrackInput{
		TgUserID: 42,
		URL:      "https://www.wildberries.ru/catalog/12345/detail.aspx",
		Channel:  "email",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
}

func TestService_CreateTrack_EmailChannelWithoutAddress(t *testing.T) {
	svc := NewService(nil, nil, nil, nil, nil, nil, nil)

	_, err := svc.CreateTrack(context.Background(), CreateTrackInput{
		TgUserID: 42,
		URL:      "https://www.wildberries.ru/catalog/12345/detail.aspx",
		Channel:  "email",
	})
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestService_CreateTrack_InvalidURL(t *testing.T) {
	svc := NewService(nil, nil, nil, nil, nil, nil, nil)

	_, err := svc.CreateTrack(context.Background(), CreateTrackInput{
		TgUserID: 42,
		URL:      "https://example.com/not-a-card",
	})
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestService_CreateTrack_ItemNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usersMock := mocks.NewMockuserRepository(ctrl)
	fetcherMock := mocks.NewMockproductFetcher(ctrl)

	svc := NewService(nil, usersMock, nil, fetcherMock, nil, nil, nil)

	usersMock.EXPECT().GetOrCreate(gomock.Any(), int64(42), "").Return(model.User{ID: 7}, nil)
	fetcherMock.EXPECT().FetchProduct(gomock.Any(), int64(404404)).Return(nil, wbapi.ErrNotFound)

	_, err := svc.CreateTrack(context.Background(), CreateTrackInput{
		TgUserID: 42,
		URL:      "https://www.wildberries.ru/catalog/404404/detail.aspx",
	})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestService_GetTrack_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracksMock := mocks.NewMocktrackRepository(ctrl)
	usersMock := mocks.NewMockuserRepository(ctrl)

	svc := NewService(tracksMock, usersMock, nil, nil, nil, nil, nil)

	usersMock.EXPECT().GetByTgID(gomock.Any(), int64(42)).Return(model.User{ID: 7}, nil)
	tracksMock.EXPECT().GetTrackByID(gomock.Any(), int64(5)).Return(model.Track{ID: 5, UserID: 8}, nil)

	_, err := svc.GetTrack(context.Background(), 42, 5)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_FindCheaper_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracksMock := mocks.NewMocktrackRepository(ctrl)
	usersMock := mocks.NewMockuserRepository(ctrl)
	cacheMock := mocks.NewMocksimilarCache(ctrl)

	svc := NewService(tracksMock, usersMock, nil, nil, nil, cacheMock, nil)

	cached := []model.SimilarProduct{{WBItemID: 201, Title: "Смарт часы"}}

	usersMock.EXPECT().GetByTgID(gomock.Any(), int64(42)).Return(model.User{ID: 7}, nil)
	tracksMock.EXPECT().GetTrackByID(gomock.Any(), int64(5)).Return(model.Track{ID: 5, UserID: 7}, nil)
	cacheMock.EXPECT().Get(gomock.Any(), int64(5)).Return(cached, true, nil)

	got, err := svc.FindCheaper(context.Background(), 42, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestService_FindCheaper_WebFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracksMock := mocks.NewMocktrackRepository(ctrl)
	usersMock := mocks.NewMockuserRepository(ctrl)
	alertsMock := mocks.NewMockalertLogRepository(ctrl)
	fetcherMock := mocks.NewMockproductFetcher(ctrl)
	engineMock := mocks.NewMocksimilarEngine(ctrl)
	cacheMock := mocks.NewMocksimilarCache(ctrl)

	svc := NewService(tracksMock, usersMock, alertsMock, fetcherMock, engineMock, cacheMock, nil)

	track := model.Track{ID: 5, UserID: 7, WBItemID: 12345, Title: "Умные часы"}
	snap := &model.Snapshot{
		WBItemID: 12345,
		Title:    "Умные часы",
		Price:    decimal.NullDecimal{Decimal: decimal.NewFromInt(3000), Valid: true},
	}
	webItems := []model.SimilarProduct{{WBItemID: 701, Price: decimal.NewFromInt(990)}}

	usersMock.EXPECT().GetByTgID(gomock.Any(), int64(42)).Return(model.User{ID: 7}, nil)
	tracksMock.EXPECT().GetTrackByID(gomock.Any(), int64(5)).Return(track, nil)
	cacheMock.EXPECT().Get(gomock.Any(), int64(5)).Return(nil, false, nil)
	fetcherMock.EXPECT().FetchProduct(gomock.Any(), int64(12345)).Return(snap, nil)
	tracksMock.EXPECT().GetRuntimeConfig(gomock.Any()).Return(model.RuntimeConfig{CheapMatchPercent: 50}, nil)

	wantOpts := similar.Options{
		MaxPrice:     decimal.NewFromInt(3000),
		ExcludeID:    12345,
		MatchPercent: 50,
		Limit:        10,
	}
	engineMock.EXPECT().FindCheaper(gomock.Any(), snap, wantOpts).Return(nil)
	engineMock.EXPECT().FindCheaperViaWeb(gomock.Any(), snap, wantOpts).Return(webItems)
	cacheMock.EXPECT().Set(gomock.Any(), int64(5), webItems).Return(nil)
	alertsMock.EXPECT().Append(gomock.Any(), int64(5), "cheap_scan", gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.FindCheaper(context.Background(), 42, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, webItems, got)
}

func TestService_FindCheaper_NoReferencePrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracksMock := mocks.NewMocktrackRepository(ctrl)
	usersMock := mocks.NewMockuserRepository(ctrl)
	fetcherMock := mocks.NewMockproductFetcher(ctrl)
	cacheMock := mocks.NewMocksimilarCache(ctrl)

	svc := NewService(tracksMock, usersMock, nil, fetcherMock, nil, cacheMock, nil)

	// The live card is gone and the track never saw a price: nothing to
	// compare against, so the search returns empty without hitting sources.
	track := model.Track{ID: 5, UserID: 7, WBItemID: 12345}

	usersMock.EXPECT().GetByTgID(gomock.Any(), int64(42)).Return(model.User{ID: 7}, nil)
	tracksMock.EXPECT().GetTrackByID(gomock.Any(), int64(5)).Return(track, nil)
	cacheMock.EXPECT().Get(gomock.Any(), int64(5)).Return(nil, false, nil)
	fetcherMock.EXPECT().FetchProduct(gomock.Any(), int64(12345)).Return(nil, errors.New("timeout"))

	got, err := svc.FindCheaper(context.Background(), 42, 5, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_Send_UnknownChannel(t *testing.T) {
	svc := NewService(nil, nil, nil, nil, nil, nil, map[string]Notifier{})

	err := svc.Send("42", "hello", "pager")
	assert.Error(t, err)
}

func TestService_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifierMock := mocks.NewMockNotifier(ctrl)
	svc := NewService(nil, nil, nil, nil, nil, nil, map[string]Notifier{
		"telegram": notifierMock,
	})

	notifierMock.EXPECT().Send("42", "hello").Return(nil)
	assert.NoError(t, svc.Send("42", "hello", "telegram"))
}
