package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bizdesk/bizdesk-backend-go/internal/authz"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/auth"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/user"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	loginResult auth.LoginResult
	loginErr    error
}

func (f *fakeAuthService) Login(_ context.Context, _ auth.LoginRequest) (auth.LoginResult, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeAuthService) Refresh(_ context.Context, claims jwt.RefreshClaims) (auth.RefreshResponse, error) {
	return auth.RefreshResponse{AccessToken: "new-access-token-for-" + claims.UserID}, nil
}

func (f *fakeAuthService) Profile(_ context.Context, _ string) (user.Profile, error) {
	return f.loginResult.User, nil
}

func (f *fakeAuthService) ValidateAccess(_ context.Context, userID string) (authz.Actor, error) {
	return authz.Actor{ID: userID, Role: user.RoleAdmin}, nil
}

func newTestHandler() (AuthHandler, jwt.Service) {
	jwtSvc := jwt.NewJWTService("access-secret", "refresh-secret", "15m", "7d")
	svc := &fakeAuthService{
		loginResult: auth.LoginResult{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			User:         user.Profile{ID: "u-1", Email: "a@example.com", Role: user.RoleAdmin, IsActive: true},
		},
	}
	return NewAuthHandler(jwtSvc, svc), jwtSvc
}

func refreshCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == jwt.RefreshCookieName {
			return c
		}
	}
	return nil
}

// The refresh token must travel only in the HttpOnly cookie, never in the
// login body.
func TestLoginSetsCookieAndOmitsRefreshToken(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(
		`{"email":"a@example.com","password":"password123"}`))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	cookie := refreshCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "refresh-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "access-token", body["accessToken"])
	assert.Contains(t, body, "user")
	assert.NotContains(t, body, "refreshToken")
	assert.NotContains(t, rec.Body.String(), "refresh-token")
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefreshRequiresCookie(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	rec := httptest.NewRecorder()
	handler.Refresh(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshRejectsAccessTokenInCookie(t *testing.T) {
	handler, jwtSvc := newTestHandler()

	// An access token stuffed into the refresh cookie must not pass.
	accessToken, _, err := jwtSvc.GenerateAccessToken("u-1", "a@example.com", user.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: jwt.RefreshCookieName, Value: accessToken})
	rec := httptest.NewRecorder()
	handler.Refresh(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshWithValidCookie(t *testing.T) {
	handler, jwtSvc := newTestHandler()

	refreshToken, _, err := jwtSvc.GenerateRefreshToken("u-1", "a@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: jwt.RefreshCookieName, Value: refreshToken})
	rec := httptest.NewRecorder()
	handler.Refresh(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body auth.RefreshResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "new-access-token-for-u-1", body.AccessToken)
}

func TestLogoutClearsCookie(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	handler.Logout(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)

	cookie := refreshCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
}
