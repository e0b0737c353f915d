// Package bootstrap wires the adapters selected by configuration for the cmd binaries.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"vidshare/internal/adapters/cache"
	"vidshare/internal/adapters/cache/rediscache"
	"vidshare/internal/adapters/repository/postgres"
	"vidshare/internal/adapters/repository/sqlite"
	"vidshare/internal/adapters/storage/minio"
	"vidshare/internal/adapters/storage/s3"
	"vidshare/internal/config"
	"vidshare/internal/core/port"
)

// NewLogger returns a text or json slog logger
func NewLogger(cfg config.Env, w io.Writer) *slog.Logger {
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, nil))
	}
	return slog.New(slog.NewTextHandler(w, nil))
}

// OpenDatabase opens the configured database and returns its unit of work
func OpenDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, port.UnitOfWork, error) {
	switch cfg.Driver {
	case config.DatabaseDriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return db, sqlite.NewUnitOfWork(db), nil
	case config.DatabaseDriverPostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return db, postgres.NewUnitOfWork(db), nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

// NewObjectStore returns the minio or s3 adapter
func NewObjectStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.ObjectStore, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMinio:
		adapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
		if err != nil {
			return nil, err
		}
		return adapter, nil
	case config.StorageDriverS3:
		adapter, err := s3.NewAdapter(ctx, cfg.S3, logger)
		if err != nil {
			return nil, err
		}
		return adapter, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

// NewVideoCache returns the redis cache when REDIS_ADDR is set, a noop cache otherwise.
// The returned close func is never nil.
func NewVideoCache(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (port.VideoCache, func() error, error) {
	if cfg.Addr == "" {
		logger.Info("redis not configured, share lookups are not cached")
		return cache.NewNoopCache(), func() error { return nil }, nil
	}

	client, err := rediscache.NewClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("redis cache enabled", "addr", cfg.Addr, "ttl", cfg.CacheTTL)
	return rediscache.NewVideoCache(client, cfg.CacheTTL), client.Close, nil
}
