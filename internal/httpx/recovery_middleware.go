package httpx

import (
	"net/http"
	"runtime/debug"

	"bookshelf/internal/logger"
)

func RecoveryMiddleware(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Error("panic recovered",
						"request_id", RequestIDFrom(r),
						"error", err,
						"stack", string(debug.Stack()),
					)

					var wroteHeader bool
					if rw, ok := w.(*responseWriter); ok {
						wroteHeader = rw.wroteHeader()
					}

					if !wroteHeader {
						JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
