package share

import (
	"errors"
	"log/slog"
	"net/http"
	"vidshare/internal/adapters/handlers/http/httputil"
	"vidshare/internal/core/domain"
	"vidshare/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// Handler serves the public share links
type Handler struct {
	shareService      port.ShareService
	logger            *slog.Logger
	trustProxyHeaders bool
}

// NewShareHandler creates Handler, trustProxyHeaders lets X-Forwarded-* pick the public base url
func NewShareHandler(service port.ShareService, logger *slog.Logger, trustProxyHeaders bool) *Handler {
	return &Handler{
		shareService:      service,
		logger:            logger,
		trustProxyHeaders: trustProxyHeaders,
	}
}

// Routes exposes routes
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{id}", h.Preview)
	router.Get("/{id}/player", h.Player)

	return router
}

// Preview serves the crawler facing document of a share link
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	html, err := h.shareService.Preview(r.Context(), id, httputil.BaseURL(r, h.trustProxyHeaders))
	if err != nil {
		h.writeError(w, err, id)
		return
	}
	httputil.WriteHTML(w, http.StatusOK, html)
}

// Player serves the embeddable player of a share link
func (h *Handler) Player(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	html, err := h.shareService.Player(r.Context(), id, httputil.BaseURL(r, h.trustProxyHeaders))
	if err != nil {
		h.writeError(w, err, id)
		return
	}
	httputil.WriteHTML(w, http.StatusOK, html)
}

// writeError answers in plain text so crawlers never get a partial document
func (h *Handler) writeError(w http.ResponseWriter, err error, id string) {
	if errors.Is(err, domain.ErrVideoNotFound) {
		http.Error(w, "video not found", http.StatusNotFound)
		return
	}
	h.logger.Error("error rendering share page", "video_id", id, "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
