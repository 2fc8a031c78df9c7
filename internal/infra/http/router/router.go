package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/brand-bridge/internal/infra/http/handlers"
	"github.com/xavierca1/brand-bridge/internal/infra/http/middleware"
)

type Options struct {
	AllowedOrigins []string
	// Debug adds chi's colored access log.
	Debug bool
}

// New wires the public routes. CORS applies to /api/* only.
func New(opts Options, lead *handlers.LeadHandler, health *handlers.HealthHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if opts.Debug {
		r.Use(chimw.Logger)
	}
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
			// preflights fall through to handlers.Preflight for the 204
			OptionsPassthrough: true,
			MaxAge:             300,
		}))

		r.Post("/subscribe", lead.Subscribe)
		r.Options("/subscribe", handlers.Preflight)

		r.Post("/update-status", lead.UpdateStatus)
		r.Options("/update-status", handlers.Preflight)

		r.Get("/health", health.Handle)
	})

	return r
}
