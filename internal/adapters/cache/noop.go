package cache

import (
	"context"
	"vidshare/internal/core/domain"
	"vidshare/internal/core/port"
)

type noopCache struct{}

// NewNoopCache returns a cache that never holds anything, used when redis is not configured
func NewNoopCache() port.VideoCache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string) (*domain.Video, error) {
	return nil, domain.ErrCacheMiss
}

func (noopCache) Set(context.Context, domain.Video) error {
	return nil
}

func (noopCache) Invalidate(context.Context, string) error {
	return nil
}
