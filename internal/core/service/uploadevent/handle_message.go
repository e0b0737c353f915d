package uploadevent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"vidshare/internal/core/domain"
)

const objectCreatedPrefix = "s3:ObjectCreated:"

func (u *uploadEventService) HandleMessage(ctx context.Context, data []byte) error {
	var event domain.StorageEvent

	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("could not unmarshal storage event: %v", err)
	}
	if len(event.Records) == 0 {
		return fmt.Errorf("no records in storage event")
	}

	for _, record := range event.Records {
		if !strings.HasPrefix(record.EventName, objectCreatedPrefix) {
			u.logger.Debug("ignoring storage event", "eventtype", record.EventName)
			continue
		}
		if err := u.handleObjectCreated(ctx, record.S3.Bucket.Name, record.S3.Object.Key, record.S3.Object.Size); err != nil {
			return err
		}
	}
	return nil
}

func (u *uploadEventService) handleObjectCreated(ctx context.Context, bucket, key string, size int64) error {
	fileName, err := url.QueryUnescape(key)
	if err != nil {
		u.logger.Warn("skipping object with undecodable key", "bucket", bucket, "key", key, "error", err)
		return nil
	}

	collection, ok := u.store.CollectionForBucket(bucket)
	if !ok {
		u.logger.Warn("skipping object from unknown bucket", "bucket", bucket, "key", fileName)
		return nil
	}

	videoID, err := collection.VideoIDFromFileName(fileName)
	if err != nil {
		u.logger.Warn("skipping non canonical object", "bucket", bucket, "key", fileName, "error", err)
		return nil
	}

	_, err = u.repo.FindByID(ctx, videoID)
	if errors.Is(err, domain.ErrVideoNotFound) {
		u.logger.Info("deleting orphaned upload", "collection", collection, "video_id", videoID)
		if err := u.store.DeleteObject(ctx, collection, fileName); err != nil {
			return fmt.Errorf("could not delete orphaned object %s: %w", fileName, err)
		}
		return nil
	}
	if err != nil {
		return err
	}

	u.logger.Info("upload completed", "collection", collection, "video_id", videoID, "size", size)
	return nil
}
