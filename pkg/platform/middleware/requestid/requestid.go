// Package requestid assigns every inbound request a correlation ID. Handlers
// and services read it through requestcontext so log lines from one render
// can be stitched together.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"lanyard/pkg/requestcontext"
)

// Header is the inbound/outbound request ID header.
const Header = "X-Request-ID"

// Middleware reuses a caller-provided request ID when present, otherwise
// generates one. The ID is echoed on the response for support tickets.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(Header)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(Header, reqID)
		ctx := requestcontext.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
