package repository

import (
	"context"
	"vidshare/internal/core/domain"
	"vidshare/internal/core/port"

	"github.com/stretchr/testify/mock"
)

type MockVideoRepository struct {
	mock.Mock
}

func NewMockVideoRepository() *MockVideoRepository {
	return &MockVideoRepository{}
}

func (m *MockVideoRepository) Insert(ctx context.Context, video domain.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) FindByID(ctx context.Context, id string) (*domain.Video, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Video), args.Error(1)
}

func (m *MockVideoRepository) ListAll(ctx context.Context) ([]domain.Video, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Video), args.Error(1)
}

func (m *MockVideoRepository) UpdatePartial(ctx context.Context, id string, update domain.VideoUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUnitOfWork struct {
	mock.Mock
	videoRepo *MockVideoRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		videoRepo: &MockVideoRepository{},
	}
}

func (m *MockUnitOfWork) VideoRepo() port.VideoRepository {
	return m.videoRepo
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)

	if err := fn(m); err != nil {
		return err
	}

	return args.Error(0)
}

func (m *MockUnitOfWork) GetVideoRepoMock() *MockVideoRepository {
	return m.videoRepo
}
