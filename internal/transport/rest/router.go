package rest

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sandevgo/tuskmem/internal/core"
	"github.com/sandevgo/tuskmem/pkg/humantime"
	"github.com/sandevgo/tuskmem/pkg/log"
)

// Browser is the listing contract the API serves.
type Browser interface {
	List(ctx context.Context, state core.FilterState) ([]core.Memory, error)
	Ping(ctx context.Context) error
}

type Deps struct {
	Browser     Browser
	Actions     core.DashboardActions
	Formatter   *humantime.Formatter
	CORSOrigins []string
	// Metrics is nil when metrics are disabled
	Metrics *Metrics
}

func NewRouter(ctx context.Context, deps Deps) http.Handler {
	if deps.Formatter == nil {
		deps.Formatter = humantime.NewFormatter("")
	}
	h := &handlers{
		browser:   deps.Browser,
		actions:   deps.Actions,
		formatter: deps.Formatter,
	}

	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(Logger(log.FromCtx(ctx)))
	router.Use(chimiddleware.Recoverer)
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware)
	}

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	router.Get("/health", h.health)
	if deps.Metrics != nil {
		router.Handle("/metrics", promhttp.HandlerFor(deps.Metrics.Registry(), promhttp.HandlerOpts{}))
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/memories", h.listMemories)
		r.Post("/memories/search", h.searchMemories)
		r.Post("/actions/{action}", h.triggerAction)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return router
}
