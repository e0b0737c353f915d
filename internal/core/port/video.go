package port

import (
	"context"
	"vidshare/internal/core/domain"
)

// VideoRepository is an interface to define video repository interactions
type VideoRepository interface {
	Insert(ctx context.Context, video domain.Video) error
	FindByID(ctx context.Context, id string) (*domain.Video, error)
	ListAll(ctx context.Context) ([]domain.Video, error)
	UpdatePartial(ctx context.Context, id string, update domain.VideoUpdate) error
	Delete(ctx context.Context, id string) error
}

// VideoService is an interface to define the video lifecycle service
type VideoService interface {
	CreateVideo(ctx context.Context, input domain.NewVideo) (*domain.Video, *domain.UploadURLs, error)
	GetVideo(ctx context.Context, id string) (*domain.Video, error)
	ListVideos(ctx context.Context) ([]domain.Video, error)
	UpdateVideo(ctx context.Context, id string, update domain.VideoUpdate) (*domain.Video, error)
	DeleteVideo(ctx context.Context, id string) error
}
