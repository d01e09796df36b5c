package user

import (
	"context"
	"testing"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/client"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/user"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const companyA = "11111111-1111-4111-8111-111111111111"

type fakeUserRepo struct {
	user.UserRepository
	users map[string]user.User
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

func (f *fakeUserRepo) Create(_ context.Context, newUser user.User) (user.User, error) {
	newUser.ID = uuid.NewString()
	f.users[newUser.ID] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) Update(_ context.Context, id string, params user.UpdateParams) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, pgx.ErrNoRows
	}
	if params.Name != nil {
		u.Name = *params.Name
	}
	if params.Email != nil {
		u.Email = *params.Email
	}
	if params.PasswordHash != nil {
		u.PasswordHash = *params.PasswordHash
	}
	if params.Role != nil {
		u.Role = *params.Role
	}
	if params.IsActive != nil {
		u.IsActive = *params.IsActive
	}
	if params.ClientCompanyID != nil {
		u.ClientCompanyID = params.ClientCompanyID
	}
	f.users[id] = u
	return u, nil
}

func (f *fakeUserRepo) Deactivate(_ context.Context, id string) error {
	u, ok := f.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.IsActive = false
	f.users[id] = u
	return nil
}

type fakeCompanyRepo struct {
	client.ClientCompanyRepository
	companies map[string]client.ClientCompany
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (client.ClientCompany, error) {
	c, ok := f.companies[id]
	if !ok {
		return client.ClientCompany{}, pgx.ErrNoRows
	}
	return c, nil
}

func strPtr(s string) *string { return &s }

func newFixture() (*fakeUserRepo, user.UserService) {
	userRepo := &fakeUserRepo{users: map[string]user.User{
		"u-1": {ID: "u-1", Name: "Alice", Email: "alice@example.com", Role: user.RoleAdmin, IsActive: true},
	}}
	companyRepo := &fakeCompanyRepo{companies: map[string]client.ClientCompany{
		companyA: {ID: companyA, Name: "Acme Corp"},
	}}
	return userRepo, NewUserService(userRepo, companyRepo)
}

func TestCreateUser(t *testing.T) {
	repo, svc := newFixture()
	ctx := context.Background()

	profile, err := svc.Create(ctx, user.CreateUserRequest{
		Name:     "Bob",
		Email:    "Bob@Example.com",
		Password: "password123",
		Role:     user.RoleEmployee,
	})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", profile.Email)
	assert.True(t, profile.IsActive)

	// Stored hash verifies against the plaintext and is not the plaintext.
	stored := repo.users[profile.ID]
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestCreateUserValidation(t *testing.T) {
	_, svc := newFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, user.CreateUserRequest{
		Name:     "",
		Email:    "not-an-email",
		Password: "short",
		Role:     "MANAGER",
	})
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 4)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	_, svc := newFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, user.CreateUserRequest{
		Name:     "Alice Two",
		Email:    "ALICE@example.com",
		Password: "password123",
		Role:     user.RoleEmployee,
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestCreateClientRequiresCompany(t *testing.T) {
	_, svc := newFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, user.CreateUserRequest{
		Name:     "Cora",
		Email:    "cora@example.com",
		Password: "password123",
		Role:     user.RoleClient,
	})
	assert.ErrorIs(t, err, user.ErrClientCompanyRequired)

	_, err = svc.Create(ctx, user.CreateUserRequest{
		Name:            "Cora",
		Email:           "cora@example.com",
		Password:        "password123",
		Role:            user.RoleClient,
		ClientCompanyID: strPtr("22222222-2222-4222-8222-222222222222"),
	})
	assert.ErrorIs(t, err, client.ErrCompanyNotFound)

	profile, err := svc.Create(ctx, user.CreateUserRequest{
		Name:            "Cora",
		Email:           "cora@example.com",
		Password:        "password123",
		Role:            user.RoleClient,
		ClientCompanyID: strPtr(companyA),
	})
	require.NoError(t, err)
	require.NotNil(t, profile.ClientCompanyID)
	assert.Equal(t, companyA, *profile.ClientCompanyID)
}

func TestUpdateUserEmailConflict(t *testing.T) {
	repo, svc := newFixture()
	ctx := context.Background()
	repo.users["u-2"] = user.User{ID: "u-2", Name: "Bob", Email: "bob@example.com", Role: user.RoleEmployee, IsActive: true}

	_, err := svc.Update(ctx, "u-2", user.UpdateUserRequest{Email: strPtr("alice@example.com")})
	assert.ErrorIs(t, err, user.ErrEmailExists)

	// Re-submitting your own email is not a conflict.
	_, err = svc.Update(ctx, "u-2", user.UpdateUserRequest{Email: strPtr("bob@example.com")})
	assert.NoError(t, err)
}

func TestUpdateOwnProfileIsLimited(t *testing.T) {
	repo, svc := newFixture()
	ctx := context.Background()

	profile, err := svc.UpdateOwnProfile(ctx, "u-1", user.UpdateOwnProfileRequest{
		Name:     strPtr("Alice Prime"),
		Password: strPtr("new-password-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Prime", profile.Name)
	// Role is untouchable on the self-service path.
	assert.Equal(t, user.RoleAdmin, repo.users["u-1"].Role)
}

func TestDeactivateIsSoft(t *testing.T) {
	repo, svc := newFixture()
	ctx := context.Background()

	require.NoError(t, svc.Deactivate(ctx, "u-1"))

	stored, ok := repo.users["u-1"]
	require.True(t, ok, "row must survive deactivation")
	assert.False(t, stored.IsActive)

	// And the account now reads as nonexistent.
	_, err := svc.GetByID(ctx, "u-1")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	assert.ErrorIs(t, svc.Deactivate(ctx, "missing"), user.ErrUserNotFound)
}
