// Package requestid assigns every request an ID, echoing a caller-supplied
// X-Request-ID when it is present and well-formed.
package requestid

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"claimeval/pkg/requestcontext"
)

// Header is the header read and written by Middleware.
const Header = "X-Request-ID"

const maxLen = 128

// Middleware stores the request ID in the context and on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(Header))
		if id == "" || len(id) > maxLen {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
