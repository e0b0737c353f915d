package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"
	"vidshare/internal/adapters/repository/sqlite"
	"vidshare/internal/core/domain"
	"vidshare/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newVideo(id string, createdAt time.Time) domain.Video {
	return domain.Video{
		ID:          id,
		Title:       "title " + id,
		Description: strPtr("description " + id),
		VideoURL:    "https://cdn.example.com/videos/" + id + ".mp4",
		RedirectURL: "https://example.org/" + id,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func TestVideoRepository_InsertAndFind(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := sqlite.NewVideoRepository(newTestDB(t))
	now := time.Now().UTC()
	video := newVideo("a1", now)

	// Act
	err := repo.Insert(ctx, video)

	// Assert
	require.NoError(t, err)
	found, err := repo.FindByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, video.Title, found.Title)
	assert.Equal(t, video.Description, found.Description)
	assert.Nil(t, found.ThumbnailURL)
	assert.Equal(t, video.VideoURL, found.VideoURL)
	assert.WithinDuration(t, now, found.CreatedAt, time.Millisecond)
	assert.Equal(t, time.UTC, found.CreatedAt.Location())
}

func TestVideoRepository_InsertDuplicate(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := sqlite.NewVideoRepository(newTestDB(t))
	video := newVideo("a1", time.Now().UTC())
	require.NoError(t, repo.Insert(ctx, video))

	// Act
	err := repo.Insert(ctx, video)

	// Assert
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestVideoRepository_FindByID_NotFound(t *testing.T) {
	repo := sqlite.NewVideoRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrVideoNotFound)
}

func TestVideoRepository_ListAll(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := sqlite.NewVideoRepository(newTestDB(t))
	now := time.Now().UTC()

	empty, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	require.NoError(t, repo.Insert(ctx, newVideo("old", now.Add(-2*time.Hour))))
	require.NoError(t, repo.Insert(ctx, newVideo("new", now)))
	require.NoError(t, repo.Insert(ctx, newVideo("mid", now.Add(-time.Hour))))

	// Act
	videos, err := repo.ListAll(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, videos, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{videos[0].ID, videos[1].ID, videos[2].ID})
}

func TestVideoRepository_UpdatePartial(t *testing.T) {
	ctx := context.Background()

	t.Run("only title changes", func(t *testing.T) {
		// Arrange
		repo := sqlite.NewVideoRepository(newTestDB(t))
		video := newVideo("a1", time.Now().UTC().Add(-time.Hour))
		require.NoError(t, repo.Insert(ctx, video))

		// Act
		err := repo.UpdatePartial(ctx, "a1", domain.VideoUpdate{Title: strPtr("X")})

		// Assert
		require.NoError(t, err)
		found, err := repo.FindByID(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, "X", found.Title)
		assert.Equal(t, video.Description, found.Description)
		assert.Equal(t, video.RedirectURL, found.RedirectURL)
		assert.WithinDuration(t, video.CreatedAt, found.CreatedAt, time.Millisecond)
		assert.True(t, found.UpdatedAt.After(video.UpdatedAt))
	})

	t.Run("empty description clears it", func(t *testing.T) {
		// Arrange
		repo := sqlite.NewVideoRepository(newTestDB(t))
		require.NoError(t, repo.Insert(ctx, newVideo("a1", time.Now().UTC())))

		// Act
		err := repo.UpdatePartial(ctx, "a1", domain.VideoUpdate{Description: strPtr("")})

		// Assert
		require.NoError(t, err)
		found, err := repo.FindByID(ctx, "a1")
		require.NoError(t, err)
		assert.Nil(t, found.Description)
	})

	t.Run("empty update", func(t *testing.T) {
		repo := sqlite.NewVideoRepository(newTestDB(t))

		err := repo.UpdatePartial(ctx, "a1", domain.VideoUpdate{})

		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("not found", func(t *testing.T) {
		repo := sqlite.NewVideoRepository(newTestDB(t))

		err := repo.UpdatePartial(ctx, "missing", domain.VideoUpdate{Title: strPtr("X")})

		assert.ErrorIs(t, err, domain.ErrVideoNotFound)
	})
}

func TestVideoRepository_Delete(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := sqlite.NewVideoRepository(newTestDB(t))
	require.NoError(t, repo.Insert(ctx, newVideo("a1", time.Now().UTC())))

	// Act
	err := repo.Delete(ctx, "a1")

	// Assert
	require.NoError(t, err)
	_, err = repo.FindByID(ctx, "a1")
	assert.ErrorIs(t, err, domain.ErrVideoNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "a1"), domain.ErrVideoNotFound)
}

func TestUnitOfWork_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		// Arrange
		db := newTestDB(t)
		uow := sqlite.NewUnitOfWork(db)
		video := newVideo("tx1", time.Now().UTC())

		// Act
		err := uow.Execute(ctx, func(u port.UnitOfWork) error {
			return u.VideoRepo().Insert(ctx, video)
		})

		// Assert
		require.NoError(t, err)
		_, err = uow.VideoRepo().FindByID(ctx, "tx1")
		assert.NoError(t, err)
	})

	t.Run("rollback", func(t *testing.T) {
		// Arrange
		db := newTestDB(t)
		uow := sqlite.NewUnitOfWork(db)
		video := newVideo("tx1", time.Now().UTC())

		// Act
		err := uow.Execute(ctx, func(u port.UnitOfWork) error {
			_ = u.VideoRepo().Insert(ctx, video)
			return assert.AnError
		})

		// Assert
		assert.ErrorIs(t, err, assert.AnError)
		_, err = uow.VideoRepo().FindByID(ctx, "tx1")
		assert.ErrorIs(t, err, domain.ErrVideoNotFound)
	})
}
