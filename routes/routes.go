package routes

import (
	"net/http"
	"time"

	"cvscanner/handlers"

	"go.uber.org/zap"
)

// withCORS allows the configured origins with credentials and whatever
// headers the browser asks for. Applied to every route, the /cv/**
// endpoints included.
func withCORS(allowedOrigins []string, next http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (allowed[origin] || allowed["*"]) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
				w.Header().Set("Access-Control-Allow-Headers", reqHeaders)
			} else {
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			}
			w.Header().Set("Vary", "Origin")
		}

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func requestLogger(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("latency", time.Since(start)),
			zap.String("remote_addr", r.RemoteAddr),
		)
	})
}

func requireMethod(method string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handler(w, r)
	}
}

// SetupRoutes wires every endpoint and returns the root handler.
func SetupRoutes(
	authHandler *handlers.AuthHandler,
	cvHandler *handlers.CVHandler,
	allowedOrigins []string,
	logger *zap.Logger,
) http.Handler {
	mux := http.NewServeMux()

	handle := func(path string, handler http.HandlerFunc) {
		mux.Handle(path, withCORS(allowedOrigins, handlers.RecoverWrapper(logger, handler)))
	}

	// Auth routes
	handle("/auth/register", requireMethod(http.MethodPost, authHandler.Register))
	handle("/auth/login", requireMethod(http.MethodPost, authHandler.Login))
	handle("/auth/change-password", requireMethod(http.MethodPost, authHandler.ChangePassword))
	handle("/auth/me", requireMethod(http.MethodGet, authHandler.Me))
	handle("/auth/all-users", requireMethod(http.MethodGet, authHandler.AllUsers))
	handle("/auth/search-users", requireMethod(http.MethodGet, authHandler.SearchUsers))
	handle("/auth/filter-users", requireMethod(http.MethodGet, authHandler.FilterUsers))
	handle("/auth/add-user", requireMethod(http.MethodPost, authHandler.AddUser))
	handle("/auth/edit-user", requireMethod(http.MethodPut, authHandler.EditUser))
	handle("/auth/delete-user", requireMethod(http.MethodDelete, authHandler.DeleteUser))
	handle("/auth/update-profile", requireMethod(http.MethodPost, authHandler.UpdateProfile))
	handle("/auth/categories", authHandler.Categories) // GET and PUT

	// CV routes
	handle("/cv/uploadcv", requireMethod(http.MethodPost, cvHandler.Upload))
	handle("/cv/recent", requireMethod(http.MethodGet, cvHandler.Recent))
	handle("/cv/health", requireMethod(http.MethodGet, cvHandler.Health))

	return requestLogger(logger, mux)
}
