package middleware

import (
	"log/slog"
	"net/http"

	"hris/internal/transport/http/api"
)

// Authorizer is satisfied by *authz.Authorizer.
type Authorizer interface {
	Allow(role, object, action string) (bool, error)
}

type Guard struct {
	Authz Authorizer
}

func NewGuard(authz Authorizer) *Guard {
	return &Guard{Authz: authz}
}

// RequireAccess rejects anonymous requests with 401 and disallowed roles with 403.
func (g *Guard) RequireAccess(object, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())
			user, ok := GetUser(r.Context())
			if !ok {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
				return
			}

			allowed, err := g.Authz.Allow(user.Role, object, action)
			if err != nil {
				slog.Warn("authorization check failed", "role", user.Role, "object", object, "action", action, "err", err)
				api.Fail(w, http.StatusInternalServerError, "permission_error", "permission check failed", requestID)
				return
			}
			if !allowed {
				api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", requestID)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (g *Guard) Read(object string) func(http.Handler) http.Handler {
	return g.RequireAccess(object, "read")
}

func (g *Guard) Write(object string) func(http.Handler) http.Handler {
	return g.RequireAccess(object, "write")
}
