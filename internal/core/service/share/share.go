package share

import (
	"context"
	"errors"
	"log/slog"
	"vidshare/internal/core/domain"
	"vidshare/internal/core/port"
	"vidshare/internal/core/sharepage"
)

type shareService struct {
	repo   port.VideoRepository
	cache  port.VideoCache
	logger *slog.Logger
}

// NewShareService creates a new share link resolution service
func NewShareService(repo port.VideoRepository, cache port.VideoCache, logger *slog.Logger) port.ShareService {
	return &shareService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *shareService) Preview(ctx context.Context, id string, baseURL string) (string, error) {
	video, err := s.lookup(ctx, id)
	if err != nil {
		return "", err
	}
	return sharepage.Preview(*video, baseURL)
}

func (s *shareService) Player(ctx context.Context, id string, baseURL string) (string, error) {
	video, err := s.lookup(ctx, id)
	if err != nil {
		return "", err
	}
	return sharepage.Player(*video, baseURL)
}

// lookup reads through the cache, cache failures only cost a repository hit
func (s *shareService) lookup(ctx context.Context, id string) (*domain.Video, error) {
	video, err := s.cache.Get(ctx, id)
	if err == nil {
		return video, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		s.logger.Warn("video cache lookup failed", "video_id", id, "error", err)
	}

	video, err = s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, *video); err != nil {
		s.logger.Warn("failed to cache video", "video_id", id, "error", err)
	}
	return video, nil
}
