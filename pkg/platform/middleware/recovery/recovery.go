// Package recovery converts handler panics into 500 responses so one bad
// template cannot take the process down.
package recovery

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	dErrors "lanyard/pkg/domain-errors"
	"lanyard/pkg/platform/httputil"
)

func Middleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.ErrorContext(r.Context(), "panic recovered",
						"panic", rec,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)
					httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "internal error"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
