package video

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.videoService.DeleteVideo(r.Context(), id); err != nil {
		h.writeServiceError(w, err, "error deleting video", "video_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
