package chi

import (
	"log/slog"
	"net/http"
	"time"
	"vidshare/internal/adapters/handlers/http/chi/share"
	"vidshare/internal/adapters/handlers/http/chi/video"
	"vidshare/internal/adapters/handlers/http/httputil"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const maxRequestBytes = 1 << 20

// NewRouter builds http.Handler with chi
func NewRouter(logger *slog.Logger, videoHandler *video.Handler, shareHandler *share.Handler) http.Handler {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(RecovererMiddleware(logger))
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.RequestSize(maxRequestBytes))

	r.With(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	})).Mount("/videos", videoHandler.Routes())

	r.Mount("/share", shareHandler.Routes())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC(),
		})
	})

	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
