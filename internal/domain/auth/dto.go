package auth

import "github.com/bizdesk/bizdesk-backend-go/internal/domain/user"

// LoginRequest deliberately has no Validate method: a malformed email is an
// authentication failure, not a validation failure, so the service answers
// it with ErrInvalidCredentials like any other miss.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is what the session service hands back on login. The refresh
// token travels separately so the handler can move it into the HttpOnly
// cookie without it ever appearing in a response body.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         user.Profile
}

type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        user.Profile `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}
