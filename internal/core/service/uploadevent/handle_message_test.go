package uploadevent_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"vidshare/internal/adapters/repository"
	"vidshare/internal/adapters/storage"
	"vidshare/internal/core/domain"
	"vidshare/internal/core/service/uploadevent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func storageEvent(eventName, bucket, key string) []byte {
	return []byte(fmt.Sprintf(`{
		"EventName": %q,
		"Key": "%s/%s",
		"Records": [{
			"eventName": %q,
			"s3": {
				"bucket": {"name": %q},
				"object": {"key": %q, "size": 1024, "eTag": "abc"}
			},
			"eventTime": "2026-01-01T00:00:00.000Z"
		}]
	}`, eventName, bucket, key, eventName, bucket, key))
}

func TestUploadEventService_HandleMessage_KnownVideo(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStore := storage.NewMockObjectStore()
	mockRepo := repository.NewMockVideoRepository()
	service := uploadevent.NewUploadEventService(mockStore, mockRepo, discardLogger())

	mockStore.On("CollectionForBucket", "videos").Return(domain.CollectionVideos, true)
	mockRepo.On("FindByID", ctx, "abc").Return(&domain.Video{ID: "abc"}, nil)

	// Act
	err := service.HandleMessage(ctx, storageEvent("s3:ObjectCreated:Put", "videos", "abc.mp4"))

	// Assert
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockStore.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadEventService_HandleMessage_Orphan(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockStore := storage.NewMockObjectStore()
	mockRepo := repository.NewMockVideoRepository()
	service := uploadevent.NewUploadEventService(mockStore, mockRepo, discardLogger())

	mockStore.On("CollectionForBucket", "thumbs").Return(domain.CollectionThumbnails, true)
	mockRepo.On("FindByID", ctx, "gone").Return((*domain.Video)(nil), domain.ErrVideoNotFound)
	mockStore.On("DeleteObject", ctx, domain.CollectionThumbnails, "gone.jpg").Return(nil)

	// Act
	err := service.HandleMessage(ctx, storageEvent("s3:ObjectCreated:CompleteMultipartUpload", "thumbs", "gone.jpg"))

	// Assert
	require.NoError(t, err)
	mockStore.AssertExpectations(t)
}

func TestUploadEventService_HandleMessage_Skips(t *testing.T) {
	tests := []struct {
		name  string
		event []byte
		setup func(store *storage.MockObjectStore)
	}{
		{
			name:  "non canonical key",
			event: storageEvent("s3:ObjectCreated:Put", "videos", "notes.txt"),
			setup: func(store *storage.MockObjectStore) {
				store.On("CollectionForBucket", "videos").Return(domain.CollectionVideos, true)
			},
		},
		{
			name:  "nested key",
			event: storageEvent("s3:ObjectCreated:Put", "videos", "a%2Fb.mp4"),
			setup: func(store *storage.MockObjectStore) {
				store.On("CollectionForBucket", "videos").Return(domain.CollectionVideos, true)
			},
		},
		{
			name:  "unknown bucket",
			event: storageEvent("s3:ObjectCreated:Put", "other", "abc.mp4"),
			setup: func(store *storage.MockObjectStore) {
				store.On("CollectionForBucket", "other").Return(domain.Collection(""), false)
			},
		},
		{
			name:  "removal event",
			event: storageEvent("s3:ObjectRemoved:Delete", "videos", "abc.mp4"),
			setup: func(store *storage.MockObjectStore) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockStore := storage.NewMockObjectStore()
			mockRepo := repository.NewMockVideoRepository()
			tt.setup(mockStore)
			service := uploadevent.NewUploadEventService(mockStore, mockRepo, discardLogger())

			// Act
			err := service.HandleMessage(context.Background(), tt.event)

			// Assert
			require.NoError(t, err)
			mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
			mockStore.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUploadEventService_HandleMessage_Errors(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		service := uploadevent.NewUploadEventService(storage.NewMockObjectStore(), repository.NewMockVideoRepository(), discardLogger())

		err := service.HandleMessage(context.Background(), []byte("not json"))

		assert.Error(t, err)
	})

	t.Run("no records", func(t *testing.T) {
		service := uploadevent.NewUploadEventService(storage.NewMockObjectStore(), repository.NewMockVideoRepository(), discardLogger())

		err := service.HandleMessage(context.Background(), []byte(`{"Records": []}`))

		assert.Error(t, err)
	})

	t.Run("repository error is returned for redelivery", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockStore := storage.NewMockObjectStore()
		mockRepo := repository.NewMockVideoRepository()
		service := uploadevent.NewUploadEventService(mockStore, mockRepo, discardLogger())

		expectedError := errors.New("database error")
		mockStore.On("CollectionForBucket", "videos").Return(domain.CollectionVideos, true)
		mockRepo.On("FindByID", ctx, "abc").Return((*domain.Video)(nil), expectedError)

		// Act
		err := service.HandleMessage(ctx, storageEvent("s3:ObjectCreated:Put", "videos", "abc.mp4"))

		// Assert
		assert.Equal(t, expectedError, err)
	})

	t.Run("delete error is wrapped", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		mockStore := storage.NewMockObjectStore()
		mockRepo := repository.NewMockVideoRepository()
		service := uploadevent.NewUploadEventService(mockStore, mockRepo, discardLogger())

		expectedError := errors.New("storage error")
		mockStore.On("CollectionForBucket", "videos").Return(domain.CollectionVideos, true)
		mockRepo.On("FindByID", ctx, "abc").Return((*domain.Video)(nil), domain.ErrVideoNotFound)
		mockStore.On("DeleteObject", ctx, domain.CollectionVideos, "abc.mp4").Return(expectedError)

		// Act
		err := service.HandleMessage(ctx, storageEvent("s3:ObjectCreated:Put", "videos", "abc.mp4"))

		// Assert
		assert.ErrorIs(t, err, expectedError)
	})
}
