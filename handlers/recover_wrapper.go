package handlers

import (
	"net/http"
	"runtime"

	"go.uber.org/zap"
)

// RecoverWrapper wraps an http.HandlerFunc with panic recovery so a
// single bad request cannot take the server down.
func RecoverWrapper(logger *zap.Logger, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := make([]byte, 8*1024)
				stack = stack[:runtime.Stack(stack, false)]
				logger.Error("panic recovered",
					zap.Any("error", rec),
					zap.String("path", r.URL.Path),
					zap.ByteString("stack", stack),
				)
				writeMessage(w, http.StatusInternalServerError, "Internal server error.")
			}
		}()

		handler(w, r)
	}
}
