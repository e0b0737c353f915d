package video

import (
	"errors"
	"log/slog"
	"net/http"
	"vidshare/internal/adapters/handlers/http/httputil"
	"vidshare/internal/core/domain"
	"vidshare/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// Handler serves the /videos resource
type Handler struct {
	videoService port.VideoService
	logger       *slog.Logger
}

// NewVideoHandler creates Handler
func NewVideoHandler(service port.VideoService, logger *slog.Logger) *Handler {
	return &Handler{
		videoService: service,
		logger:       logger,
	}
}

// Routes exposes routes
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.ListVideos)
	router.Post("/", h.CreateVideo)
	router.Options("/", preflight)

	router.Get("/{id}", h.GetVideo)
	router.Put("/{id}", h.UpdateVideo)
	router.Delete("/{id}", h.DeleteVideo)
	router.Options("/{id}", preflight)

	return router
}

// preflight answers OPTIONS requests the cors middleware did not short-circuit
func preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// writeServiceError maps domain errors to status codes, internal details stay in the logs
func (h *Handler) writeServiceError(w http.ResponseWriter, err error, msg string, attrs ...any) {
	switch {
	case errors.Is(err, domain.ErrVideoNotFound):
		httputil.WriteError(w, http.StatusNotFound, "video not found")
	case errors.Is(err, domain.ErrInvalidArgument):
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error(msg, append(attrs, "error", err)...)
		httputil.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
