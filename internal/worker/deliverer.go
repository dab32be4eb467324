package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mkarpekin/wbwatch/internal/rabbitmq/queue"
)

type alertConsumer interface {
	Consume(out chan<- queue.AlertMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.AlertMessage, strategy retry.Strategy)
}

// Deliverer drains the alert queue with a pool of workers and hands each
// message to the delivery handler.
type Deliverer struct {
	queue   alertConsumer
	handler messageHandler
}

func NewDeliverer(q alertConsumer, h messageHandler) *Deliverer {
	return &Deliverer{
		queue:   q,
		handler: h,
	}
}

func (d *Deliverer) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	msgChan := make(chan queue.AlertMessage, workerCount*10)

	go func() {
		if err := d.queue.Consume(msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume messages")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("deliverer-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("deliverer-%d shutting down", id)
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Printf("deliverer-%d channel closed, shutting down", id)
						return
					}

					d.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("deliverer stopped")
}
