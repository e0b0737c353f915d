package video

import (
	"context"
	"encoding/hex"
	"log/slog"
	"time"
	"vidshare/internal/core/port"

	"github.com/google/uuid"
)

// UploadURLTTL is the validity of the signed upload URLs issued on create
const UploadURLTTL = time.Hour

type videoService struct {
	uow    port.UnitOfWork
	store  port.ObjectStore
	cache  port.VideoCache
	logger *slog.Logger
}

// NewVideoService creates a new video lifecycle service
func NewVideoService(uow port.UnitOfWork, store port.ObjectStore, cache port.VideoCache, logger *slog.Logger) port.VideoService {
	return &videoService{uow: uow, store: store, cache: cache, logger: logger}
}

// newVideoID hex encodes the 16 bytes of a v4 uuid into a 32 char id.
// The version and variant bits are fixed, leaving 122 random bits from crypto/rand.
func newVideoID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// invalidate drops the share lookup entry once a mutation is committed
func (v *videoService) invalidate(ctx context.Context, id string) {
	if err := v.cache.Invalidate(ctx, id); err != nil {
		v.logger.Warn("failed to invalidate cached video", "video_id", id, "error", err)
	}
}
