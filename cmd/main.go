package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/app/server"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/app/sockets"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/app/worker"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/config"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/services"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/platform/logger"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/platform/telemetry"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/plugins/gateway"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/plugins/postgres"
	redisPlugin "github.com/KarthicSuRa/mcm-alerts-aws/internal/plugins/redis"

	"github.com/redis/go-redis/v9"
)

func main() {
	// Context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Config
	cfg := config.Load()

	// Logger
	log := logger.NewLogger(*cfg)
	log.Info("starting application")

	otelShutdown, err := telemetry.InitTelemetry(ctx, *cfg)
	if err != nil {
		log.Error("failed to initialize telemetry", "err", err)
	}
	defer func() {
		log.Info("flushing telemetry...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			log.Error("telemetry shutdown failed", "err", err)
		}
	}()

	// Infra
	var pdb *sql.DB
	if pdb, err = postgres.New(ctx, *cfg.Postgres); err != nil {
		log.Error("postgres connection failed", "DSN", cfg.Postgres.DSN)
		return
	}
	log.Info("postgres connected")
	var rdb *redis.Client
	if rdb, err = redisPlugin.NewRedisClient(ctx, *cfg.Redis); err != nil {
		log.Error("redis connection failed", "url", cfg.Redis.URL)
		return
	}
	log.Info("redis connected")

	// Adapters
	commentRepo := postgres.NewCommentRepo(pdb)
	notificationRepo := postgres.NewNotificationRepo(pdb)
	deviceRepo := postgres.NewDeviceRepo(pdb)
	connRegistry := redisPlugin.NewRedisConnectionRegistry(rdb)
	eventQueue := redisPlugin.NewRedisEventQueue(rdb)
	resolver := gateway.NewClient(*cfg.Push)

	// Core services
	table := sockets.NewTable()
	txManager := postgres.NewTxManager(pdb)
	tokenSvc := services.NewTokenService(cfg.SecretToken)
	notifier := services.NewEventNotifier(log, eventQueue, cfg.Worker.Stream)
	broadcastSvc := services.NewBroadcastService(log, connRegistry, resolver, cfg.Push.SendTimeout)
	lifecycleSvc := services.NewLifecycleService(log, connRegistry)
	deviceSvc := services.NewDeviceService(log, deviceRepo, txManager)
	commentSvc := services.NewCommentService(log, commentRepo, notifier, txManager)
	notificationSvc := services.NewNotificationService(log, notificationRepo, notifier, txManager)

	// Broadcast worker
	wrkr := worker.NewBroadcastWorker(log, eventQueue, broadcastSvc, cfg.Worker.Stream, cfg.Worker.Group)
	if err := wrkr.Run(ctx); err != nil {
		log.Error("broadcast worker failed to start", "err", err)
		return
	}

	// Server
	srv := server.NewServer(
		log,
		cfg.Service.Name,
		cfg.Service.Addr,
		tokenSvc,
		deviceSvc,
		commentSvc,
		notificationSvc,
		lifecycleSvc,
		table,
		*cfg.Push,
	)
	if err := srv.Start(); err != nil {
		log.Error("server stopped", "err", err)
	}
}
