package domain_test

import (
	"testing"
	"time"
	"vidshare/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewVideo_Normalize(t *testing.T) {
	t.Run("trims and drops blank description", func(t *testing.T) {
		in := domain.NewVideo{Title: "  My clip ", Description: strPtr("   "), RedirectURL: " https://example.com/landing "}

		out, err := in.Normalize()

		require.NoError(t, err)
		assert.Equal(t, "My clip", out.Title)
		assert.Nil(t, out.Description)
		assert.Equal(t, "https://example.com/landing", out.RedirectURL)
	})

	t.Run("keeps description", func(t *testing.T) {
		out, err := domain.NewVideo{Title: "t", Description: strPtr(" hello "), RedirectURL: "http://a.b"}.Normalize()

		require.NoError(t, err)
		require.NotNil(t, out.Description)
		assert.Equal(t, "hello", *out.Description)
	})

	cases := map[string]domain.NewVideo{
		"missing title":     {Title: " ", RedirectURL: "https://example.com"},
		"missing redirect":  {Title: "t"},
		"relative redirect": {Title: "t", RedirectURL: "/somewhere"},
		"javascript scheme": {Title: "t", RedirectURL: "javascript:alert(1)"},
		"unparseable":       {Title: "t", RedirectURL: "http://[::1"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := in.Normalize()
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestVideoUpdate_Normalize(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		_, err := domain.VideoUpdate{}.Normalize()
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := domain.VideoUpdate{Title: strPtr("")}.Normalize()
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("empty description allowed", func(t *testing.T) {
		out, err := domain.VideoUpdate{Description: strPtr(" ")}.Normalize()
		require.NoError(t, err)
		require.NotNil(t, out.Description)
		assert.Equal(t, "", *out.Description)
		assert.Nil(t, out.Title)
		assert.Nil(t, out.RedirectURL)
	})

	t.Run("bad redirect rejected", func(t *testing.T) {
		_, err := domain.VideoUpdate{RedirectURL: strPtr("ftp://example.com")}.Normalize()
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func TestCollection_FileNames(t *testing.T) {
	assert.Equal(t, "abc.mp4", domain.CollectionVideos.FileName("abc"))
	assert.Equal(t, "abc.jpg", domain.CollectionThumbnails.FileName("abc"))

	id, err := domain.CollectionVideos.VideoIDFromFileName("abc.mp4")
	require.NoError(t, err)
	assert.Equal(t, "abc", id)

	_, err = domain.CollectionVideos.VideoIDFromFileName("abc.jpg")
	assert.Error(t, err)
	_, err = domain.CollectionThumbnails.VideoIDFromFileName(".jpg")
	assert.Error(t, err)
	_, err = domain.CollectionThumbnails.VideoIDFromFileName("x/abc.jpg")
	assert.Error(t, err)
	_, err = domain.Collection("other").VideoIDFromFileName("abc.mp4")
	assert.Error(t, err)
}

func TestNow_MicrosecondUTC(t *testing.T) {
	now := domain.Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Microsecond))
}
