package middleware

import (
	"net/http"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/user"
	"github.com/bizdesk/bizdesk-backend-go/internal/handler/http/response"
)

// RequireAdmin requires the resolved actor to hold the ADMIN role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok || actor.Role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRoles admits any of the given roles. The role comes from the actor
// resolved against the store, so a stale token role does not widen access.
func RequireRoles(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if ok {
				for _, role := range roles {
					if actor.Role == role {
						next.ServeHTTP(w, r)
						return
					}
				}
			}
			response.Forbidden(w, "Access denied")
		})
	}
}
