package cache

import (
	"context"
	"vidshare/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockVideoCache struct {
	mock.Mock
}

func NewMockVideoCache() *MockVideoCache {
	return &MockVideoCache{}
}

func (m *MockVideoCache) Get(ctx context.Context, id string) (*domain.Video, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoCache) Set(ctx context.Context, video domain.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoCache) Invalidate(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
