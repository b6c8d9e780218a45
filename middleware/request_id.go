package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackielii/ctxkey"
	"github.com/jackielii/pageroute"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLen = 128

var requestIDCtx = ctxkey.New[string]("pageroute.middleware.requestID", "")

// RequestIDFrom returns the request ID stored by RequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	return requestIDCtx.Value(ctx)
}

// RequestID assigns every request an ID. A well formed incoming X-Request-ID
// is kept, otherwise a random UUID is generated. The ID is echoed in the
// response header.
func RequestID() pageroute.MiddlewareFunc {
	return func(next http.Handler, _ *pageroute.Route) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if !validRequestID(id) {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(requestIDCtx.WithValue(r.Context(), id)))
		})
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for _, c := range id {
		if c < 0x21 || c > 0x7e {
			return false
		}
	}
	return true
}
