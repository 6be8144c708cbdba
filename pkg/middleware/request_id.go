package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"legal-assistant/pkg/utils"
)

const requestIDHeader = "X-Request-Id"

// RequestID tags every request with an ID for log correlation. An incoming
// header wins so upstream proxies can thread their own IDs through.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}

			w.Header().Set(requestIDHeader, id)

			ctx := utils.SetRequestIDContext(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
