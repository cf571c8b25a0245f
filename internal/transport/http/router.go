// Package http assembles the HTTP surface: middleware chain, public
// validation routes, admin routes and the operational endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tincheck/internal/admin"
	"tincheck/internal/ratelimit"
	"tincheck/internal/validation/handler"
	"tincheck/pkg/platform/middleware/metadata"
	"tincheck/pkg/platform/middleware/request"
)

// Deps collects everything the router needs wired in.
type Deps struct {
	Logger     *slog.Logger
	Validation *handler.Handler
	Admin      *admin.Handler
	RateLimit  *ratelimit.Middleware
}

// NewRouter builds the full route tree. The public validation API lives under
// /v1, the operator surface under /admin, and /healthz and /metrics are
// unauthenticated for probes and scrapers.
func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(metadata.ClientMetadata)
	r.Use(request.ID)
	r.Use(request.Logger(deps.Logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(v1 chi.Router) {
		if deps.RateLimit != nil {
			v1.Use(deps.RateLimit.Handler)
		}
		deps.Validation.Register(v1)
	})

	r.Route("/admin", func(ar chi.Router) {
		deps.Admin.Register(ar)
	})

	return r
}
