package routing

import (
	"context"
	"net/http"

	"github.com/km-arc/go-discover/framework/container"
)

type scopeKey struct{}

// ScopeMiddleware opens a [container.Scope] for every request and stores it
// in the request context. This is what makes the scoped lifetime mean "one
// instance per request": every scoped binding resolved during the request
// yields the same instance, and the next request gets a fresh one.
//
//	r.Middleware(routing.ScopeMiddleware(c))
func ScopeMiddleware(c *container.Container) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			sc := c.NewScope()
			ctx := context.WithValue(req.Context(), scopeKey{}, sc)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

// ScopeFrom returns the request's scope, or nil when [ScopeMiddleware] is
// not installed.
func ScopeFrom(r *http.Request) *container.Scope {
	sc, _ := r.Context().Value(scopeKey{}).(*container.Scope)
	return sc
}
