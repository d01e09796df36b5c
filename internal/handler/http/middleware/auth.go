package middleware

import (
	"context"
	"net/http"

	"github.com/bizdesk/bizdesk-backend-go/internal/authz"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/auth"
	"github.com/bizdesk/bizdesk-backend-go/internal/handler/http/response"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type actorKey struct{}

// AuthRequired rejects requests without a valid access token and resolves
// the acting identity from the store, not from the claims. A refresh token
// on this path fails the type check; a deactivated user fails the store
// lookup even while the token is still cryptographically valid.
func AuthRequired(authService auth.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, jwt.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, jwt.ErrInvalidToken)
				return
			}
			userID, ok := claims["sub"].(string)
			if !ok || userID == "" {
				response.HandleError(w, jwt.ErrInvalidToken)
				return
			}

			actor, err := authService.ValidateAccess(r.Context(), userID)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), actorKey{}, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// ActorFromContext returns the identity stored by AuthRequired.
func ActorFromContext(ctx context.Context) (authz.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(authz.Actor)
	return actor, ok
}
