package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bizdesk/bizdesk-backend-go/internal/authz"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/auth"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/user"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/jwt"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

// Login implements auth.AuthService. Unknown email, inactive account, and
// wrong password all collapse into ErrInvalidCredentials.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResult, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return auth.LoginResult{}, auth.ErrInvalidCredentials
	}

	userData, err := a.UserRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.LoginResult{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !userData.IsActive {
		return auth.LoginResult{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResult{}, auth.ErrInvalidCredentials
	}

	accessToken, _, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
	if err != nil {
		return auth.LoginResult{}, fmt.Errorf("failed to create access token: %w", err)
	}
	refreshToken, _, err := a.Service.GenerateRefreshToken(userData.ID, userData.Email)
	if err != nil {
		return auth.LoginResult{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return auth.LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         userData.Profile(),
	}, nil
}

// Refresh implements auth.AuthService. The user behind the claims is re-read
// so a deactivated account cannot mint new access tokens, and the new token
// carries the user's current role, not the one from login time.
func (a *AuthServiceImpl) Refresh(ctx context.Context, claims jwt.RefreshClaims) (auth.RefreshResponse, error) {
	userData, err := a.liveUser(ctx, claims.UserID)
	if err != nil {
		return auth.RefreshResponse{}, err
	}

	accessToken, _, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	return auth.RefreshResponse{AccessToken: accessToken}, nil
}

// Profile implements auth.AuthService.
func (a *AuthServiceImpl) Profile(ctx context.Context, userID string) (user.Profile, error) {
	userData, err := a.liveUser(ctx, userID)
	if err != nil {
		return user.Profile{}, err
	}
	return userData.Profile(), nil
}

// ValidateAccess implements auth.AuthService.
func (a *AuthServiceImpl) ValidateAccess(ctx context.Context, userID string) (authz.Actor, error) {
	userData, err := a.liveUser(ctx, userID)
	if err != nil {
		return authz.Actor{}, err
	}
	return authz.Actor{
		ID:              userData.ID,
		Email:           userData.Email,
		Role:            userData.Role,
		ClientCompanyID: userData.ClientCompanyID,
	}, nil
}

func (a *AuthServiceImpl) liveUser(ctx context.Context, userID string) (user.User, error) {
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, auth.ErrSessionInvalid
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !userData.IsActive {
		return user.User{}, auth.ErrSessionInvalid
	}
	return userData, nil
}
