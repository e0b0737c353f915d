package video

import (
	"context"
	"fmt"
	"vidshare/internal/core/domain"
)

func (v *videoService) CreateVideo(ctx context.Context, input domain.NewVideo) (*domain.Video, *domain.UploadURLs, error) {

	input, err := input.Normalize()
	if err != nil {
		return nil, nil, err
	}

	id := newVideoID()
	videoFileName := domain.CollectionVideos.FileName(id)
	thumbnailFileName := domain.CollectionThumbnails.FileName(id)

	videoUploadURL, err := v.store.SignedUploadURL(ctx, domain.CollectionVideos, videoFileName, UploadURLTTL)
	if err != nil {
		return nil, nil, fmt.Errorf("could not issue video upload url: %w", err)
	}

	thumbnailUploadURL, err := v.store.SignedUploadURL(ctx, domain.CollectionThumbnails, thumbnailFileName, UploadURLTTL)
	if err != nil {
		return nil, nil, fmt.Errorf("could not issue thumbnail upload url: %w", err)
	}

	thumbnailURL := v.store.PublicURL(domain.CollectionThumbnails, thumbnailFileName)
	now := domain.Now()

	video := domain.Video{
		ID:           id,
		Title:        input.Title,
		Description:  input.Description,
		VideoURL:     v.store.PublicURL(domain.CollectionVideos, videoFileName),
		ThumbnailURL: &thumbnailURL,
		RedirectURL:  input.RedirectURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := v.uow.VideoRepo().Insert(ctx, video); err != nil {
		return nil, nil, fmt.Errorf("could not insert video: %w", err)
	}

	v.logger.Info("video created", "video_id", id)

	return &video, &domain.UploadURLs{
		VideoUploadURL:     videoUploadURL,
		ThumbnailUploadURL: thumbnailUploadURL,
	}, nil
}
