package storage

import (
	"context"
	"time"
	"vidshare/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockObjectStore struct {
	mock.Mock
}

func NewMockObjectStore() *MockObjectStore {
	return &MockObjectStore{}
}

func (m *MockObjectStore) SignedUploadURL(ctx context.Context, collection domain.Collection, fileName string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, collection, fileName, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) PublicURL(collection domain.Collection, fileName string) string {
	args := m.Called(collection, fileName)
	return args.String(0)
}

func (m *MockObjectStore) DeleteObject(ctx context.Context, collection domain.Collection, fileName string) error {
	args := m.Called(ctx, collection, fileName)
	return args.Error(0)
}

func (m *MockObjectStore) CollectionForBucket(bucket string) (domain.Collection, bool) {
	args := m.Called(bucket)
	return args.Get(0).(domain.Collection), args.Bool(1)
}
