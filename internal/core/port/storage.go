package port

import (
	"context"
	"time"
	"vidshare/internal/core/domain"
)

// ObjectStore is an interface to define object store interactions for the video and thumbnail collections
type ObjectStore interface {
	// SignedUploadURL returns a write capable URL; expiry is enforced by the store itself
	SignedUploadURL(ctx context.Context, collection domain.Collection, fileName string, ttl time.Duration) (string, error)
	// PublicURL is a pure function of its inputs and never touches the network
	PublicURL(collection domain.Collection, fileName string) string
	DeleteObject(ctx context.Context, collection domain.Collection, fileName string) error
	CollectionForBucket(bucket string) (domain.Collection, bool)
}
