package http

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
)

// Middleware defines the standard signature for an HTTP middleware.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middlewares into a single handler.
// The middlewares are applied in the order they are passed.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// contextKey is a custom type to avoid key collisions in context.
type contextKey string

const (
	dryRunKey    contextKey = "dryRun"
	userEmailKey contextKey = "userEmail"
)

// paramsMiddleware handles common query parameters like 'verbose' and
// 'dry_run', and stashes the caller's identity from the X-User-Email header.
func paramsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Info("incoming request", "method", r.Method, "url", r.URL.String())
		if r.URL.Query().Get("verbose") == "true" {
			originalLevel := log.GetLevel()
			log.SetLevel(log.DebugLevel)
			defer log.SetLevel(originalLevel)
		}

		isDryRun := r.URL.Query().Get("dry_run") == "true"
		ctx := context.WithValue(r.Context(), dryRunKey, isDryRun)
		ctx = context.WithValue(ctx, userEmailKey, r.Header.Get("X-User-Email"))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly rejects requests whose X-User-Email is not on the allow-list.
// The header is trusted as-is; the frontend authenticates the user and the
// API is not exposed beyond it.
func (s *Server) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := userEmailFromContext(r)
		if !s.Admin.IsAdmin(email) {
			log.Warn("Rejected non-admin request", "method", r.Method, "url", r.URL.Path, "email", email)
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// isDryRunFromContext is a helper to safely retrieve the dry_run flag from the request context.
func isDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(dryRunKey).(bool)
	return ok && dryRun
}

// userEmailFromContext retrieves the caller identity set by paramsMiddleware.
func userEmailFromContext(r *http.Request) string {
	email, ok := r.Context().Value(userEmailKey).(string)
	if !ok {
		return ""
	}
	return email
}
