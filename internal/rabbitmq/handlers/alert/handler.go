package alert

import (
	"context"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mkarpekin/wbwatch/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/alert/mock.go -package=mocks
type alertSender interface {
	Send(to, message, channel string) error
}

// Handler delivers one queued alert, retrying transient send failures.
// A message that exhausts its retries is left for the broker to dead-letter.
type Handler struct {
	service alertSender
}

func NewHandler(svc alertSender) *Handler {
	return &Handler{
		service: svc,
	}
}

func (h *Handler) HandleMessage(ctx context.Context, msg queue.AlertMessage, strategy retry.Strategy) {
	zlog.Logger.Info().Msgf("Handle Message: Got alert %s for track %d", msg.ID, msg.TrackID)

	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			zlog.Logger.Printf("Handle Message: Sending alert %s via %s", msg.ID, msg.Channel)
			return h.service.Send(msg.To, msg.Text, msg.Channel)
		}
	}, strategy)

	if err != nil {
		zlog.Logger.Error().Err(err).Msgf("Handle Message: Alert %s failed, moving to DLQ", msg.ID)
		return
	}

	zlog.Logger.Info().Msgf("Handle Message: Alert %s sent successfully", msg.ID)
}
