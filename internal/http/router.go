// Package httpapi assembles the public router. It stays a thin wiring layer;
// endpoint behavior lives with each handler package.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lanyard/pkg/platform/httputil"
	"lanyard/pkg/platform/middleware/recovery"
	"lanyard/pkg/platform/middleware/requestid"
	"lanyard/pkg/platform/middleware/requesttime"
)

// Registrar mounts a handler's routes.
type Registrar interface {
	Register(r chi.Router)
}

// HealthChecker reports backing-store reachability for /healthz.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// NewRouter wires middleware, the badge endpoints, and the operational
// endpoints into one handler.
func NewRouter(badges Registrar, health HealthChecker, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(recovery.Middleware(logger))
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)

	badges.Register(r)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if health != nil {
			if err := health.Health(req.Context()); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
