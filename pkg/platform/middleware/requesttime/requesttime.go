// Package requesttime provides middleware for request-scoped time.
// All work within a single HTTP request shares the same "now", so the
// evaluated_at stamp in a response matches what the logs record.
package requesttime

import (
	"net/http"
	"time"

	"claimeval/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
