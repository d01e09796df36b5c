package jwt

import (
	"net/http"
	"testing"
	"time"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "access-secret-for-tests"
	testRefreshSecret = "refresh-secret-for-tests"
)

func newTestService() Service {
	return NewJWTService(testAccessSecret, testRefreshSecret, "15m", "7d")
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "a@example.com", user.RoleEmployee)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := svc.VerifyAccess(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, user.RoleEmployee, claims.Role)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken("user-1", "a@example.com")
	require.NoError(t, err)

	claims, err := svc.VerifyRefresh(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
}

// A refresh token must never pass as an access token, nor the reverse, even
// though both are valid JWTs.
func TestTokenKindConfusion(t *testing.T) {
	svc := newTestService()

	access, _, err := svc.GenerateAccessToken("user-1", "a@example.com", user.RoleAdmin)
	require.NoError(t, err)
	refresh, _, err := svc.GenerateRefreshToken("user-1", "a@example.com")
	require.NoError(t, err)

	_, err = svc.VerifyAccess(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.VerifyRefresh(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	svc := newTestService()
	other := NewJWTService("completely-different-secret", testRefreshSecret, "15m", "7d")

	token, _, err := other.GenerateAccessToken("user-1", "a@example.com", user.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.VerifyAccess(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := newTestService().(*JWTService)

	// Expired well past the 30s acceptable skew.
	_, token, err := svc.accessAuth.Encode(map[string]interface{}{
		"sub":   "user-1",
		"email": "a@example.com",
		"role":  "ADMIN",
		"type":  "access",
		"exp":   time.Now().Add(-2 * time.Minute).Unix(),
	})
	require.NoError(t, err)

	_, err = svc.VerifyAccess(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.VerifyAccess("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTTLSeconds(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"30s", 30},
		{"15m", 900},
		{"2h", 7200},
		{"7d", 604800},
		// Unparseable values fall back to the 7 day refresh default.
		{"", defaultRefreshTTLSeconds},
		{"15", defaultRefreshTTLSeconds},
		{"1w", defaultRefreshTTLSeconds},
		{"m15", defaultRefreshTTLSeconds},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseTTLSeconds(tt.in), "ttl %q", tt.in)
	}
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := newTestService()

	cookie := svc.RefreshTokenCookie("some-token")
	assert.Equal(t, RefreshCookieName, cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	assert.Equal(t, 604800, cookie.MaxAge)
}

func TestLogoutCookieClears(t *testing.T) {
	svc := newTestService()

	cookie := svc.LogoutCookie()
	assert.Equal(t, RefreshCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Expires.After(time.Unix(1, 0)))
	// Serialized header must carry the literal Max-Age=0, which net/http
	// emits for MaxAge < 0.
	assert.Contains(t, cookie.String(), "Max-Age=0")
}
