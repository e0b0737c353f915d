package video

import (
	"context"
	"vidshare/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockVideoService is a mock implementation of VideoService
type MockVideoService struct {
	mock.Mock
}

// NewMockVideoService creates a new MockVideoService
func NewMockVideoService() *MockVideoService {
	return &MockVideoService{}
}

func (m *MockVideoService) CreateVideo(ctx context.Context, input domain.NewVideo) (*domain.Video, *domain.UploadURLs, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(*domain.Video), args.Get(1).(*domain.UploadURLs), args.Error(2)
}

func (m *MockVideoService) GetVideo(ctx context.Context, id string) (*domain.Video, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoService) ListVideos(ctx context.Context) ([]domain.Video, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Video), args.Error(1)
}

func (m *MockVideoService) UpdateVideo(ctx context.Context, id string, update domain.VideoUpdate) (*domain.Video, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoService) DeleteVideo(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
