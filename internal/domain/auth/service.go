package auth

import (
	"context"

	"github.com/bizdesk/bizdesk-backend-go/internal/authz"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/user"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/jwt"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResult, error)
	// Refresh trusts an already-verified refresh token's claims, re-checks
	// the user's liveness, and mints a new access token. The refresh token
	// itself is neither rotated nor invalidated.
	Refresh(ctx context.Context, claims jwt.RefreshClaims) (RefreshResponse, error)
	Profile(ctx context.Context, userID string) (user.Profile, error)
	// ValidateAccess resolves the acting identity from current store state,
	// so a deactivated or re-roled user is cut off even while holding a
	// live access token.
	ValidateAccess(ctx context.Context, userID string) (authz.Actor, error)
}
