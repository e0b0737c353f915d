package share

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockShareService is a mock implementation of ShareService
type MockShareService struct {
	mock.Mock
}

// NewMockShareService creates a new MockShareService
func NewMockShareService() *MockShareService {
	return &MockShareService{}
}

func (m *MockShareService) Preview(ctx context.Context, id string, baseURL string) (string, error) {
	args := m.Called(ctx, id, baseURL)
	return args.String(0), args.Error(1)
}

func (m *MockShareService) Player(ctx context.Context, id string, baseURL string) (string, error) {
	args := m.Called(ctx, id, baseURL)
	return args.String(0), args.Error(1)
}
