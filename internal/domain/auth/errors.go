package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for a missing or malformed email,
	// an unknown or inactive account, and a wrong password alike, so login
	// never acts as a user-existence oracle.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrSessionInvalid means the user behind a valid token no longer
	// exists or is inactive.
	ErrSessionInvalid = errors.New("user not found or inactive")
	// ErrRefreshCookieMissing means the refresh cookie was absent or empty.
	ErrRefreshCookieMissing = errors.New("missing refresh token cookie")
)
