package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/nhl-fantasy-update/internal/http/handlers"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/http/middleware"
	"github.com/preston-bernstein/nhl-fantasy-update/internal/metrics"
)

// RouterConfig collects everything the HTTP surface needs.
type RouterConfig struct {
	Handler     *handlers.Handler
	Admin       *handlers.AdminHandler // optional
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	CORSOrigins []string // empty disables CORS headers
}

// NewRouter registers HTTP routes on a chi router.
func NewRouter(cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(cfg.Logger, cfg.Metrics))
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
			AllowedHeaders: []string{"Accept", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	h := cfg.Handler
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Get("/report", h.Report)
	r.Get("/report/{section}", h.Section)
	if cfg.Admin != nil {
		r.Post("/admin/deliver", cfg.Admin.Deliver)
	}
	return r
}
