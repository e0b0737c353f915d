package video

import (
	"context"
	"vidshare/internal/core/domain"
)

func (v *videoService) GetVideo(ctx context.Context, id string) (*domain.Video, error) {
	return v.uow.VideoRepo().FindByID(ctx, id)
}

func (v *videoService) ListVideos(ctx context.Context) ([]domain.Video, error) {
	videos, err := v.uow.VideoRepo().ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []domain.Video{}
	}
	return videos, nil
}
