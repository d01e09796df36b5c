package user

import "context"

type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (Profile, error)
	List(ctx context.Context, query ListUsersQuery) (ListUsersResponse, error)
	GetByID(ctx context.Context, id string) (Profile, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (Profile, error)
	// UpdateOwnProfile is the self-service path: name, email, password only.
	UpdateOwnProfile(ctx context.Context, userID string, req UpdateOwnProfileRequest) (Profile, error)
	// Deactivate soft-deletes: the account stays in the store with
	// is_active=false and vanishes from every liveness-checked path.
	Deactivate(ctx context.Context, id string) error
}
