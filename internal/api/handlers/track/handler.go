package track

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/mkarpekin/wbwatch/internal/api/dto"
	"github.com/mkarpekin/wbwatch/internal/api/respond"
	"github.com/mkarpekin/wbwatch/internal/cache"
	"github.com/mkarpekin/wbwatch/internal/model"
	trackrepo "github.com/mkarpekin/wbwatch/internal/repository/track"
	tracksvc "github.com/mkarpekin/wbwatch/internal/service/track"
)

// trackService defines the business operations the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/track/mock.go -package=mocks
type trackService interface {
	CreateTrack(ctx context.Context, in tracksvc.CreateTrackInput) (model.Track, error)
	GetTracks(ctx context.Context, tgUserID int64) ([]model.Track, error)
	GetTrack(ctx context.Context, tgUserID, trackID int64) (model.Track, error)
	SetActive(ctx context.Context, tgUserID, trackID int64, active bool) error
	DeleteTrack(ctx context.Context, tgUserID, trackID int64) error
	FindCheaper(ctx context.Context, tgUserID, trackID int64, limit int) ([]model.SimilarProduct, error)
}

type workerState interface {
	Load(ctx context.Context) (cache.State, bool, error)
}

// Handler handles HTTP requests for track management, similar search and the
// health endpoint.
type Handler struct {
	service   trackService
	state     workerState
	validator *validator.Validate
}

// NewHandler creates a new Handler instance.
func NewHandler(s trackService, state workerState, v *validator.Validate) *Handler {
	return &Handler{service: s, state: state, validator: v}
}

func pathID(c *ginext.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id")
	}
	return id, nil
}

func queryUser(c *ginext.Context) (int64, error) {
	raw := c.Request.URL.Query().Get("tg_user_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid tg_user_id")
	}
	return id, nil
}

func (h *Handler) failFromService(c *ginext.Context, err error, action string) {
	switch {
	case errors.Is(err, trackrepo.ErrTrackNotFound):
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("track not found"))
	case errors.Is(err, tracksvc.ErrForbidden):
		respond.Fail(c.Writer, http.StatusForbidden, fmt.Errorf("track belongs to another user"))
	default:
		zlog.Logger.Error().Err(err).Msgf("failed to %s", action)
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}

// Create handles HTTP POST requests to subscribe a user to an item.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateTrackRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	created, err := h.service.CreateTrack(c.Request.Context(), tracksvc.CreateTrackInput{
		TgUserID:          req.TgUserID,
		Username:          req.Username,
		URL:               req.URL,
		TargetPrice:       req.TargetPrice,
		TargetDropPercent: req.TargetDropPercent,
		WatchStock:        req.WatchStock,
		WatchQty:          req.WatchQty,
		WatchSizes:        req.WatchSizes,
		Channel:           req.Channel,
		Email:             req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, tracksvc.ErrInvalidURL), errors.Is(err, tracksvc.ErrEmailRequired):
			respond.Fail(c.Writer, http.StatusBadRequest, err)
		case errors.Is(err, tracksvc.ErrItemNotFound):
			respond.Fail(c.Writer, http.StatusUnprocessableEntity, err)
		default:
			zlog.Logger.Error().Err(err).Str("url", req.URL).Msg("failed to create track")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.Created(c.Writer, created)
}

// List handles HTTP GET requests for a user's tracks.
func (h *Handler) List(c *ginext.Context) {
	tgUserID, err := queryUser(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	tracks, err := h.service.GetTracks(c.Request.Context(), tgUserID)
	if err != nil {
		h.failFromService(c, err, "list tracks")
		return
	}
	if tracks == nil {
		tracks = []model.Track{}
	}

	respond.OK(c.Writer, tracks)
}

// Get handles HTTP GET requests for one track.
func (h *Handler) Get(c *ginext.Context) {
	tgUserID, err := queryUser(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}
	id, err := pathID(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	track, err := h.service.GetTrack(c.Request.Context(), tgUserID, id)
	if err != nil {
		h.failFromService(c, err, "get track")
		return
	}

	respond.OK(c.Writer, track)
}

func (h *Handler) setActive(c *ginext.Context, active bool, action string) {
	tgUserID, err := queryUser(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}
	id, err := pathID(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	if err := h.service.SetActive(c.Request.Context(), tgUserID, id, active); err != nil {
		h.failFromService(c, err, action)
		return
	}

	respond.OK(c.Writer, "track "+action+"d")
}

// Pause handles HTTP POST requests to pause checking a track.
func (h *Handler) Pause(c *ginext.Context) {
	h.setActive(c, false, "pause")
}

// Resume handles HTTP POST requests to resume checking a track.
func (h *Handler) Resume(c *ginext.Context) {
	h.setActive(c, true, "resume")
}

// Delete handles HTTP DELETE requests to remove a track.
func (h *Handler) Delete(c *ginext.Context) {
	tgUserID, err := queryUser(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}
	id, err := pathID(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	if err := h.service.DeleteTrack(c.Request.Context(), tgUserID, id); err != nil {
		h.failFromService(c, err, "delete track")
		return
	}

	respond.OK(c.Writer, "track deleted")
}

// Similar handles HTTP GET requests for cheaper equivalents of a track's item.
func (h *Handler) Similar(c *ginext.Context) {
	tgUserID, err := queryUser(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}
	id, err := pathID(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	limit := 0
	if raw := c.Request.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 || limit > 50 {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid limit"))
			return
		}
	}

	items, err := h.service.FindCheaper(c.Request.Context(), tgUserID, id, limit)
	if err != nil {
		h.failFromService(c, err, "find cheaper")
		return
	}

	respond.OK(c.Writer, items)
}

type healthStatus struct {
	Worker    string  `json:"worker"`
	LastOK    string  `json:"last_ok,omitempty"`
	CycleSecs float64 `json:"cycle_sec,omitempty"`
}

// Health handles HTTP GET requests for the worker heartbeat.
func (h *Handler) Health(c *ginext.Context) {
	state, ok, err := h.state.Load(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to load worker state")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}
	if !ok {
		respond.OK(c.Writer, healthStatus{Worker: "silent"})
		return
	}

	respond.OK(c.Writer, healthStatus{
		Worker:    "ok",
		LastOK:    state.LastOK.Format(time.RFC3339),
		CycleSecs: state.CycleSecs,
	})
}
