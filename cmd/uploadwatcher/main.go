package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"vidshare/internal/adapters/eventbroker/nats"
	"vidshare/internal/bootstrap"
	"vidshare/internal/config"
	"vidshare/internal/core/service/uploadevent"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()
	logger := bootstrap.NewLogger(config.Env{}, os.Stdout)

	// Load config
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.NATS.Validate(); err != nil {
		logger.Error("invalid NATS config", "error", err)
		os.Exit(1)
	}
	logger = bootstrap.NewLogger(cfg.Env, os.Stdout)

	db, unitOfWork, err := bootstrap.OpenDatabase(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()
	logger.Info("db connection established", "driver", cfg.Database.Driver)

	store, err := bootstrap.NewObjectStore(ctx, *cfg, logger)
	if err != nil {
		logger.Error("failed to init object storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	logger.Info("object storage initialized", "driver", cfg.Storage.Driver)

	uploadService := uploadevent.NewUploadEventService(store, unitOfWork.VideoRepo(), logger)

	natsConsumer, err := nats.NewNATSConsumer(cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to create NATS consumer", "error", err)
		os.Exit(1)
	}
	logger.Info("NATS consumer initialized", "url", cfg.NATS.URL)

	if err := natsConsumer.Subscribe(ctx, uploadService); err != nil {
		logger.Error("failed to subscribe to NATS", "error", err)
		_ = natsConsumer.Close()
		os.Exit(1)
	}
	logger.Info("NATS subscription active", "stream", cfg.NATS.StreamName, "subject", cfg.NATS.Subject)

	// Wait for termination signal
	<-ctx.Done()
	logger.Info("gracefully shutting down upload watcher")

	// Close drains the in flight message before the connection goes away
	if err := natsConsumer.Close(); err != nil {
		logger.Error("failed to close NATS consumer during shutdown", "error", err)
	}

	logger.Info("upload watcher shutdown complete")
}
