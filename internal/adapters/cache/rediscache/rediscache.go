package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"vidshare/internal/config"
	"vidshare/internal/core/domain"
	"vidshare/internal/core/port"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "vidshare:video:"

// invalidated marks a key whose video was just updated or deleted
const invalidated = "invalidated"

// invalidationTTL outlives the http request timeout, so a lookup that read the
// repository before the mutation cannot fill the key afterwards
const invalidationTTL = 2 * time.Minute

type redisVideoCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewClient connects to redis and checks the connection
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return client, nil
}

// NewVideoCache stores videos as json with the given ttl
func NewVideoCache(client *redis.Client, ttl time.Duration) port.VideoCache {
	return &redisVideoCache{client: client, ttl: ttl}
}

func key(id string) string {
	return keyPrefix + id
}

func (r *redisVideoCache) Get(ctx context.Context, id string) (*domain.Video, error) {
	data, err := r.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCacheMiss
		}
		return nil, err
	}
	if string(data) == invalidated {
		return nil, domain.ErrCacheMiss
	}

	var video domain.Video
	if err := json.Unmarshal(data, &video); err != nil {
		return nil, fmt.Errorf("could not decode cached video %s: %w", id, err)
	}
	return &video, nil
}

func (r *redisVideoCache) Set(ctx context.Context, video domain.Video) error {
	data, err := json.Marshal(video)
	if err != nil {
		return err
	}
	// NX: never replace a live entry or an invalidation marker
	return r.client.SetNX(ctx, key(video.ID), data, r.ttl).Err()
}

func (r *redisVideoCache) Invalidate(ctx context.Context, id string) error {
	return r.client.Set(ctx, key(id), invalidated, invalidationTTL).Err()
}
