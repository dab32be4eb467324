package main

import (
	"context"
	"errors"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	trackhandler "github.com/mkarpekin/wbwatch/internal/api/handlers/track"
	"github.com/mkarpekin/wbwatch/internal/api/router"
	"github.com/mkarpekin/wbwatch/internal/api/server"
	"github.com/mkarpekin/wbwatch/internal/cache"
	"github.com/mkarpekin/wbwatch/internal/config"
	alertmsg "github.com/mkarpekin/wbwatch/internal/rabbitmq/handlers/alert"
	"github.com/mkarpekin/wbwatch/internal/rabbitmq/queue"
	"github.com/mkarpekin/wbwatch/internal/repository/alertlog"
	trackrepo "github.com/mkarpekin/wbwatch/internal/repository/track"
	userrepo "github.com/mkarpekin/wbwatch/internal/repository/user"
	"github.com/mkarpekin/wbwatch/internal/similar"
	tracksvc "github.com/mkarpekin/wbwatch/internal/service/track"
	"github.com/mkarpekin/wbwatch/internal/wbapi"
	"github.com/mkarpekin/wbwatch/internal/worker"
	"github.com/mkarpekin/wbwatch/pkg/email"
	"github.com/mkarpekin/wbwatch/pkg/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	alertQueue, err := queue.NewAlertQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create alert queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	tracks := trackrepo.NewRepository(db)
	users := userrepo.NewRepository(db)
	alerts := alertlog.NewRepository(db)

	snapshots := cache.NewSnapshots(rdb.Client)
	similarResults := cache.NewSimilarResults(rdb.Client)
	workerState := cache.NewWorkerState(rdb.Client)

	wbClient := wbapi.NewClient(cfg.WB)
	fetcher := wbapi.NewFetcher(wbClient, snapshots)

	tokenizer := similar.NewTokenizer(nil)
	categories := wbapi.NewCategoryCache(wbClient, 0, tokenizer.Tokenize)
	engine := similar.NewEngine(wbClient, categories, fetcher, tokenizer)

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)
	telegramClient := telegram.NewClient(cfg.Telegram.Token)

	notifiers := map[string]tracksvc.Notifier{
		"email":    emailClient,
		"telegram": telegramClient,
	}

	service := tracksvc.NewService(tracks, users, alerts, fetcher, engine, similarResults, notifiers)
	handler := trackhandler.NewHandler(service, workerState, val)
	messageHandler := alertmsg.NewHandler(service)

	monitor := worker.NewMonitor(cfg.Worker, tracks, alerts, fetcher, alertQueue, workerState, cfg.Retry)
	deliverer := worker.NewDeliverer(alertQueue, messageHandler)

	go monitor.Run(ctx)
	go deliverer.Run(ctx, cfg.Retry, cfg.Workers.Count)

	r := router.New(handler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
