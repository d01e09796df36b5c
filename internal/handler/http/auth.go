package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bizdesk/bizdesk-backend-go/internal/authz"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/auth"
	"github.com/bizdesk/bizdesk-backend-go/internal/handler/http/middleware"
	"github.com/bizdesk/bizdesk-backend-go/internal/handler/http/response"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// requestActor returns the identity resolved by the auth middleware. Routes
// calling it are always behind AuthRequired; a miss means a wiring bug.
func requestActor(w http.ResponseWriter, r *http.Request) (authz.Actor, bool) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.HandleError(w, jwt.ErrInvalidToken)
	}
	return actor, ok
}

// Login implements AuthHandler. The refresh token travels only in the
// HttpOnly cookie; the body carries the access token and the profile.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(result.RefreshToken))
	response.JSON(w, http.StatusCreated, auth.LoginResponse{
		AccessToken: result.AccessToken,
		User:        result.User,
	})
}

// Refresh implements AuthHandler.
func (a *AuthHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(jwt.RefreshCookieName)
	if err != nil || cookie.Value == "" {
		response.HandleError(w, auth.ErrRefreshCookieMissing)
		return
	}

	claims, err := a.jwtService.VerifyRefresh(cookie.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	refreshed, err := a.authService.Refresh(r.Context(), claims)
	if err != nil {
		slog.Error("Refresh service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, refreshed)
}

// Profile implements AuthHandler.
func (a *AuthHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	profile, err := a.authService.Profile(r.Context(), actor.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, profile)
}

// Logout implements AuthHandler. Stateless: clearing the cookie is the whole
// operation.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, a.jwtService.LogoutCookie())
	response.NoContent(w)
}
