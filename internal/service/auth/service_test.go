package auth

import (
	"context"
	"testing"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/auth"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/user"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/jwt"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo keeps users in memory. Only the lookups the session service
// touches are implemented; the rest are never called here.
type fakeUserRepo struct {
	user.UserRepository
	users map[string]user.User
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]user.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func testUser(t *testing.T, id, email string, role user.Role, active bool) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	return user.User{
		ID:           id,
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     active,
	}
}

func newTestJWT() jwt.Service {
	return jwt.NewJWTService("access-secret", "refresh-secret", "15m", "7d")
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	jwtSvc := newTestJWT()
	repo := newFakeUserRepo(testUser(t, "u-1", "alice@example.com", user.RoleAdmin, true))
	svc := NewAuthService(repo, jwtSvc)

	result, err := svc.Login(ctx, auth.LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", result.User.ID)
	assert.Equal(t, user.RoleAdmin, result.User.Role)

	claims, err := jwtSvc.VerifyAccess(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, user.RoleAdmin, claims.Role)

	refreshClaims, err := jwtSvc.VerifyRefresh(result.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "u-1", refreshClaims.UserID)
}

func TestLoginEmailCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo(testUser(t, "u-1", "alice@example.com", user.RoleClient, true))
	svc := NewAuthService(repo, newTestJWT())

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "  ALICE@Example.COM ", Password: "password123"})
	assert.NoError(t, err)
}

// Unknown email, wrong password and a deactivated account must be
// indistinguishable to the caller.
func TestLoginFailuresAreUniform(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo(
		testUser(t, "u-1", "alice@example.com", user.RoleAdmin, true),
		testUser(t, "u-2", "gone@example.com", user.RoleEmployee, false),
	)
	svc := NewAuthService(repo, newTestJWT())

	cases := []auth.LoginRequest{
		{Email: "nobody@example.com", Password: "password123"},
		{Email: "alice@example.com", Password: "wrong-password"},
		{Email: "gone@example.com", Password: "password123"},
		{Email: "", Password: "password123"},
		{Email: "alice@example.com", Password: ""},
	}
	for _, req := range cases {
		_, err := svc.Login(ctx, req)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials, "email=%q", req.Email)
	}
}

func TestRefreshMintsTokenWithCurrentRole(t *testing.T) {
	ctx := context.Background()
	jwtSvc := newTestJWT()
	repo := newFakeUserRepo(testUser(t, "u-1", "alice@example.com", user.RoleEmployee, true))
	svc := NewAuthService(repo, jwtSvc)

	// Role changes after login; the refreshed token must carry the new one.
	u := repo.users["u-1"]
	u.Role = user.RoleAdmin
	repo.users["u-1"] = u

	refreshed, err := svc.Refresh(ctx, jwt.RefreshClaims{UserID: "u-1", Email: "alice@example.com"})
	require.NoError(t, err)

	claims, err := jwtSvc.VerifyAccess(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, claims.Role)
}

func TestRefreshRejectsDeactivatedUser(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo(testUser(t, "u-1", "alice@example.com", user.RoleClient, false))
	svc := NewAuthService(repo, newTestJWT())

	_, err := svc.Refresh(ctx, jwt.RefreshClaims{UserID: "u-1", Email: "alice@example.com"})
	assert.ErrorIs(t, err, auth.ErrSessionInvalid)

	_, err = svc.Refresh(ctx, jwt.RefreshClaims{UserID: "unknown", Email: "x@example.com"})
	assert.ErrorIs(t, err, auth.ErrSessionInvalid)
}

func TestProfileNeverLeaksPasswordHash(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo(testUser(t, "u-1", "alice@example.com", user.RoleClient, true))
	svc := NewAuthService(repo, newTestJWT())

	profile, err := svc.Profile(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", profile.ID)
	assert.Equal(t, "alice@example.com", profile.Email)
}

func TestValidateAccessResolvesFreshState(t *testing.T) {
	ctx := context.Background()
	companyID := "11111111-1111-4111-8111-111111111111"
	u := testUser(t, "u-1", "bob@example.com", user.RoleClient, true)
	u.ClientCompanyID = &companyID
	repo := newFakeUserRepo(u)
	svc := NewAuthService(repo, newTestJWT())

	actor, err := svc.ValidateAccess(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, user.RoleClient, actor.Role)
	require.NotNil(t, actor.ClientCompanyID)
	assert.Equal(t, companyID, *actor.ClientCompanyID)

	// Deactivation cuts the session off even with a live token.
	u.IsActive = false
	repo.users["u-1"] = u
	_, err = svc.ValidateAccess(ctx, "u-1")
	assert.ErrorIs(t, err, auth.ErrSessionInvalid)
}
