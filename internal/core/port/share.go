package port

import (
	"context"
	"vidshare/internal/core/domain"
)

// ShareService resolves share links into rendered HTML documents
type ShareService interface {
	Preview(ctx context.Context, id string, baseURL string) (string, error)
	Player(ctx context.Context, id string, baseURL string) (string, error)
}

// VideoCache is a lookup cache in front of the repository for share resolution.
// Set only fills an empty key: it must not overwrite an entry, nor a key
// invalidated by a concurrent update or delete.
type VideoCache interface {
	Get(ctx context.Context, id string) (*domain.Video, error)
	Set(ctx context.Context, video domain.Video) error
	Invalidate(ctx context.Context, id string) error
}
