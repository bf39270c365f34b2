package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/0x24CaptainParrot/splitpay-service/internal/config"
	"github.com/0x24CaptainParrot/splitpay-service/internal/currency"
	"github.com/0x24CaptainParrot/splitpay-service/internal/logger"
	"github.com/0x24CaptainParrot/splitpay-service/internal/pkg/handlers"
	"github.com/0x24CaptainParrot/splitpay-service/internal/pkg/repository"
	"github.com/0x24CaptainParrot/splitpay-service/internal/pkg/service"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("failed to parse config: %s", err.Error())
	}

	if err := logger.NewZapLogger(cfg.LogLevel); err != nil {
		log.Fatalf("failed to init logger: %s", err.Error())
	}
	defer logger.Sync()
	cfg.Log(logger.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := repository.NewPostgresDB(cfg.DBUri)
	if err != nil {
		logger.Sugar.Fatalf("failed to initialize db: %s", err.Error())
	}
	defer db.Close()

	if err := repository.ApplyMigrations(db, cfg.MigrationsDir); err != nil {
		logger.Sugar.Fatalf("failed to apply migrations: %s", err.Error())
	}

	pool, err := repository.NewPostgresPool(ctx, cfg.DBUri)
	if err != nil {
		logger.Sugar.Fatalf("failed to initialize db pool: %s", err.Error())
	}
	defer pool.Close()

	rdb, err := repository.NewRedisClient(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Sugar.Fatalf("failed to initialize redis: %s", err.Error())
	}
	defer rdb.Close()

	formatter, err := currency.NewFormatter(cfg.Currency, cfg.Locale)
	if err != nil {
		logger.Sugar.Fatalf("failed to initialize currency formatter: %s", err.Error())
	}

	repo := repository.NewRepository(repository.Options{
		DB:            db,
		Pool:          pool,
		Redis:         rdb,
		SessionTTL:    cfg.SessionTTL,
		NotifyChannel: cfg.NotifyChannel,
	})

	services := service.NewService(service.Dependencies{
		Authorization: service.NewAuthService(cfg.JWTSecret, cfg.SessionTTL),
		SplitPayment:  service.NewSplitPaymentService(repo, formatter, cfg.Filter()),
	})

	handler := handlers.NewHandler(services)
	srv := &handlers.Server{}

	go func() {
		if err := srv.Run(cfg.RunAddr, handler.InitApiRoutes()); err != nil {
			logger.Sugar.Fatalf("error occured on server: %s", err.Error())
		}
	}()

	<-ctx.Done()
	logger.Log.Info("splitpay service shutting down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Sugar.Errorf("error occured on server while shutting down: %s", err.Error())
	}
}
