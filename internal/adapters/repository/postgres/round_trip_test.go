package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"vidshare/internal/adapters/cache"
	"vidshare/internal/adapters/repository/postgres"
	"vidshare/internal/adapters/storage"
	"vidshare/internal/core/domain"
	"vidshare/internal/core/service/video"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVideoService_RoundTrip_Postgres(t *testing.T) {
	// Arrange
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	truncate()
	ctx := context.Background()

	mockStore := storage.NewMockObjectStore()
	mockStore.On("SignedUploadURL", mock.Anything, mock.Anything, mock.Anything, video.UploadURLTTL).Return("https://upload.example", nil)
	mockStore.On("PublicURL", mock.Anything, mock.Anything).Return("https://cdn.example/file")
	service := video.NewVideoService(
		postgres.NewUnitOfWork(dbConnection),
		mockStore,
		cache.NewNoopCache(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	// Act
	created, _, err := service.CreateVideo(ctx, domain.NewVideo{Title: "Clip", RedirectURL: "https://example.org"})
	require.NoError(t, err)
	got, err := service.GetVideo(ctx, created.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	title := "Renamed"
	updated, err := service.UpdateVideo(ctx, created.ID, domain.VideoUpdate{Title: &title})
	require.NoError(t, err)
	got, err = service.GetVideo(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)
	assert.True(t, got.UpdatedAt.After(created.UpdatedAt))
}
