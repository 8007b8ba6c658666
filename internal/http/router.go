// Package httpapi assembles the route table. Every endpoint is also exposed
// under an /api prefix so browser clients can share a reverse-proxy rule.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"nba-predictor-service/internal/http/handlers"
	"nba-predictor-service/internal/http/middleware"
	"nba-predictor-service/internal/metrics"
)

// RouterConfig carries the cross-cutting pieces the router wraps around the
// route handlers.
type RouterConfig struct {
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	CorsOrigins []string
}

// NewRouter builds the chi mux and wraps it with request logging and CORS.
func NewRouter(h *handlers.Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	register := func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/games", h.Games)
		r.Get("/team-stats", h.TeamStats)
		r.Get("/odds", h.Odds)
		r.Get("/predict", h.Predict)
		r.Get("/teams", h.Teams)
	}
	register(r)
	r.Route("/api", register)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: cfg.CorsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
	})

	return middleware.Logging(cfg.Logger, cfg.Metrics, corsMiddleware.Handler(r))
}
