package video

import (
	"net/http"
	"vidshare/internal/adapters/handlers/http/httputil"
)

// ListVideos returns every video, newest first
func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.videoService.ListVideos(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "error listing videos")
		return
	}

	resp := ListVideosResponse{Videos: make([]VideoResponse, 0, len(videos))}
	for _, v := range videos {
		resp.Videos = append(resp.Videos, toVideoResponse(v))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
