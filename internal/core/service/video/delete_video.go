package video

import (
	"context"
	"fmt"
)

func (v *videoService) DeleteVideo(ctx context.Context, id string) error {

	if err := v.uow.VideoRepo().Delete(ctx, id); err != nil {
		return fmt.Errorf("could not delete video: %w", err)
	}

	v.invalidate(ctx, id)
	v.logger.Info("video deleted", "video_id", id)

	return nil
}
