package video_test

import (
	"io"
	"log/slog"
	"net/http"
	"time"
	"vidshare/internal/adapters/handlers/http/chi"
	"vidshare/internal/adapters/handlers/http/chi/share"
	"vidshare/internal/adapters/handlers/http/chi/video"
	"vidshare/internal/core/domain"
	shareservice "vidshare/internal/core/service/share"
	videoservice "vidshare/internal/core/service/video"
)

func strPtr(s string) *string { return &s }

func newTestRouter(mockVideoService *videoservice.MockVideoService) http.Handler {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	videoHandler := video.NewVideoHandler(mockVideoService, discardLogger)
	shareHandler := share.NewShareHandler(shareservice.NewMockShareService(), discardLogger, true)
	return chi.NewRouter(discardLogger, videoHandler, shareHandler)
}

func sampleVideo() *domain.Video {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Video{
		ID:           "0123456789abcdef0123456789abcdef",
		Title:        "My clip",
		VideoURL:     "https://cdn.example.com/videos/0123456789abcdef0123456789abcdef.mp4",
		ThumbnailURL: strPtr("https://cdn.example.com/thumbnails/0123456789abcdef0123456789abcdef.jpg"),
		RedirectURL:  "https://example.org",
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}
