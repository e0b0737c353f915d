package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	"vidshare/internal/adapters/handlers/http/chi"
	sharehandler "vidshare/internal/adapters/handlers/http/chi/share"
	videohandler "vidshare/internal/adapters/handlers/http/chi/video"
	"vidshare/internal/bootstrap"
	"vidshare/internal/config"
	"vidshare/internal/core/service/share"
	"vidshare/internal/core/service/video"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := bootstrap.NewLogger(config.Env{}, os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = bootstrap.NewLogger(cfg.Env, os.Stdout)

	db, unitOfWork, err := bootstrap.OpenDatabase(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}(db)
	logger.Info("db connection established", "driver", cfg.Database.Driver)

	//storage
	store, err := bootstrap.NewObjectStore(ctx, *cfg, logger)
	if err != nil {
		logger.Error("failed to init object storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}

	//cache
	videoCache, closeCache, err := bootstrap.NewVideoCache(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Error("failed to init redis cache", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeCache(); err != nil {
			logger.Error("failed to close redis cache", "error", err)
		}
	}()

	videoService := video.NewVideoService(unitOfWork, store, videoCache, logger)
	shareService := share.NewShareService(unitOfWork.VideoRepo(), videoCache, logger)

	//http
	videoHandler := videohandler.NewVideoHandler(videoService, logger)
	shareHandler := sharehandler.NewShareHandler(shareService, logger, cfg.Server.TrustProxyHeaders)

	router := chi.NewRouter(logger, videoHandler, shareHandler)
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port, "env", cfg.Env.Env)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down api")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("api shutdown complete")
}
