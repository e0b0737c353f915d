package video

import (
	"encoding/json"
	"net/http"
	"vidshare/internal/adapters/handlers/http/httputil"
	"vidshare/internal/core/domain"
)

// CreateVideo registers a video and returns its signed upload urls
func (h *Handler) CreateVideo(w http.ResponseWriter, r *http.Request) {

	var req CreateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("error decoding create video request", "error", err)
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	video, urls, err := h.videoService.CreateVideo(r.Context(), domain.NewVideo{
		Title:       req.Title,
		Description: req.Description,
		RedirectURL: req.RedirectURL,
	})
	if err != nil {
		h.writeServiceError(w, err, "error creating video")
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, CreateVideoResponse{
		Video: toVideoResponse(*video),
		UploadURLs: UploadURLsResponse{
			VideoUploadURL:     urls.VideoUploadURL,
			ThumbnailUploadURL: urls.ThumbnailUploadURL,
		},
	})
}
