package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/aryannaik/arcade-search/internal/index"
	"github.com/aryannaik/arcade-search/internal/metrics"
	"github.com/aryannaik/arcade-search/internal/render"
)

// Options configures the router.
type Options struct {
	BaseURL      string
	StaticDir    string
	PageSize     int
	PreviewLimit int
}

// NewRouter wires the site routes under opts.BaseURL. /healthz and /metrics
// are served from the root.
func NewRouter(store *index.Store, renderer *render.Renderer, opts Options, logger *zap.Logger) http.Handler {
	handlers := NewHandlers(store, renderer, opts.PageSize, opts.PreviewLimit)

	base := opts.BaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())

	r.Get("/healthz", handlers.HandleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Get(base+"search/", handlers.HandleSearchPage)
	r.Get(base+"search/results", handlers.HandleSearchResults)
	r.Get(base+"api/search", handlers.HandleAPISearch)
	r.Get(base+"api/preview", handlers.HandlePreview)
	r.Get(base+"games/", handlers.HandleGames)

	if base != "/" {
		r.Get(strings.TrimSuffix(base, "/"), func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, base, http.StatusMovedPermanently)
		})
	}
	if opts.StaticDir != "" {
		r.Handle(base+"*", http.StripPrefix(base, http.FileServer(http.Dir(opts.StaticDir))))
	}

	return r
}
