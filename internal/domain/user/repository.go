package user

import "context"

type UpdateParams struct {
	Name            *string
	Email           *string
	PasswordHash    *string
	Role            *Role
	IsActive        *bool
	ClientCompanyID *string
}

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, id string, params UpdateParams) (User, error)
	// List returns active users only, optionally filtered by role.
	List(ctx context.Context, query ListUsersQuery) ([]User, int64, error)
	Deactivate(ctx context.Context, id string) error
	// ListActiveExcept returns every active user except the given id, with
	// CompanyName populated for linked clients.
	ListActiveExcept(ctx context.Context, id string) ([]User, error)
	ListActiveByRole(ctx context.Context, role Role) ([]User, error)
	// ListActiveClientsByCompanies returns active CLIENT users linked to any
	// of the given companies, with CompanyName populated.
	ListActiveClientsByCompanies(ctx context.Context, companyIDs []string) ([]User, error)
}
