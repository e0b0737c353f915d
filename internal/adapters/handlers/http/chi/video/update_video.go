package video

import (
	"encoding/json"
	"net/http"
	"vidshare/internal/adapters/handlers/http/httputil"
	"vidshare/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("error decoding update video request", "video_id", id, "error", err)
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	video, err := h.videoService.UpdateVideo(r.Context(), id, domain.VideoUpdate{
		Title:       req.Title,
		Description: req.Description,
		RedirectURL: req.RedirectURL,
	})
	if err != nil {
		h.writeServiceError(w, err, "error updating video", "video_id", id)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, SingleVideoResponse{Video: toVideoResponse(*video)})
}
