package video

import (
	"net/http"
	"vidshare/internal/adapters/handlers/http/httputil"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetVideo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	video, err := h.videoService.GetVideo(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err, "error getting video", "video_id", id)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, SingleVideoResponse{Video: toVideoResponse(*video)})
}
