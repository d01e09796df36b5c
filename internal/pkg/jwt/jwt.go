package jwt

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// RefreshCookieName is the HttpOnly cookie carrying the refresh token.
const RefreshCookieName = "refreshToken"

const defaultRefreshTTLSeconds = 7 * 24 * 60 * 60

// ErrInvalidToken covers bad signature, expiry, and token-kind confusion
// (a refresh token presented where an access token is required, and the
// reverse). Callers never learn which one failed.
var ErrInvalidToken = errors.New("invalid or expired token")

// AccessClaims is the payload of an access token.
type AccessClaims struct {
	UserID string
	Email  string
	Role   user.Role
}

// RefreshClaims is the payload of a refresh token. It deliberately carries
// no role: the role is re-read from the store on refresh.
type RefreshClaims struct {
	UserID string
	Email  string
}

type Service interface {
	GenerateAccessToken(userID, email string, role user.Role) (token string, expiresAt int64, err error)
	GenerateRefreshToken(userID, email string) (token string, expiresAt int64, err error)
	VerifyAccess(tokenString string) (AccessClaims, error)
	VerifyRefresh(tokenString string) (RefreshClaims, error)
	AccessAuth() *jwtauth.JWTAuth
	RefreshTTLSeconds() int
	RefreshTokenCookie(token string) *http.Cookie
	LogoutCookie() *http.Cookie
}

// JWTService signs the two token kinds with independent secrets.
type JWTService struct {
	accessAuth        *jwtauth.JWTAuth
	refreshAuth       *jwtauth.JWTAuth
	accessTTLSeconds  int
	refreshTTLSeconds int
}

func NewJWTService(accessSecret, refreshSecret, accessTTL, refreshTTL string) Service {
	return &JWTService{
		accessAuth:        jwtauth.New("HS256", []byte(accessSecret), nil, jwt.WithAcceptableSkew(30*time.Second)),
		refreshAuth:       jwtauth.New("HS256", []byte(refreshSecret), nil, jwt.WithAcceptableSkew(30*time.Second)),
		accessTTLSeconds:  parseTTLSeconds(accessTTL),
		refreshTTLSeconds: parseTTLSeconds(refreshTTL),
	}
}

func (j *JWTService) AccessAuth() *jwtauth.JWTAuth {
	return j.accessAuth
}

func (j *JWTService) RefreshTTLSeconds() int {
	return j.refreshTTLSeconds
}

func (j *JWTService) GenerateAccessToken(userID, email string, role user.Role) (string, int64, error) {
	expiresAt := time.Now().Add(time.Duration(j.accessTTLSeconds) * time.Second).Unix()
	_, tokenString, err := j.accessAuth.Encode(map[string]interface{}{
		"sub":   userID,
		"email": email,
		"role":  string(role),
		"type":  "access",
		"exp":   expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(userID, email string) (string, int64, error) {
	expiresAt := time.Now().Add(time.Duration(j.refreshTTLSeconds) * time.Second).Unix()
	_, tokenString, err := j.refreshAuth.Encode(map[string]interface{}{
		"sub":   userID,
		"email": email,
		"type":  "refresh",
		"exp":   expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) VerifyAccess(tokenString string) (AccessClaims, error) {
	claims, err := verify(j.accessAuth, tokenString, "access")
	if err != nil {
		return AccessClaims{}, err
	}
	roleStr, _ := claims["role"].(string)
	out := AccessClaims{Role: user.Role(roleStr)}
	out.UserID, _ = claims["sub"].(string)
	out.Email, _ = claims["email"].(string)
	if out.UserID == "" || !user.ValidRole(out.Role) {
		return AccessClaims{}, ErrInvalidToken
	}
	return out, nil
}

func (j *JWTService) VerifyRefresh(tokenString string) (RefreshClaims, error) {
	claims, err := verify(j.refreshAuth, tokenString, "refresh")
	if err != nil {
		return RefreshClaims{}, err
	}
	var out RefreshClaims
	out.UserID, _ = claims["sub"].(string)
	out.Email, _ = claims["email"].(string)
	if out.UserID == "" {
		return RefreshClaims{}, ErrInvalidToken
	}
	return out, nil
}

func verify(ja *jwtauth.JWTAuth, tokenString, wantType string) (map[string]interface{}, error) {
	token, err := jwtauth.VerifyToken(ja, tokenString)
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, err := token.AsMap(context.Background())
	if err != nil {
		return nil, ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != wantType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// RefreshTokenCookie returns the transport cookie for the refresh token.
// SameSite=None + Secure so the browser dashboard on another origin can
// send it; Path=/ so /auth/refresh and /auth/logout both see it.
func (j *JWTService) RefreshTokenCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     RefreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   j.refreshTTLSeconds,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

// LogoutCookie reissues the refresh cookie empty with Max-Age=0 on the wire
// (MaxAge: -1 is how net/http serializes that), clearing it client-side.
// There is no server-side invalidation.
func (j *JWTService) LogoutCookie() *http.Cookie {
	return &http.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

var ttlRegex = regexp.MustCompile(`^(\d+)(s|m|h|d)$`)

// parseTTLSeconds parses TTL strings like "15m", "7d". An unparseable value
// falls back to the refresh default of 7 days, never to a short access TTL.
func parseTTLSeconds(ttl string) int {
	m := ttlRegex.FindStringSubmatch(ttl)
	if m == nil {
		return defaultRefreshTTLSeconds
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return defaultRefreshTTLSeconds
	}
	switch m[2] {
	case "s":
		return n
	case "m":
		return n * 60
	case "h":
		return n * 60 * 60
	case "d":
		return n * 24 * 60 * 60
	}
	return defaultRefreshTTLSeconds
}
