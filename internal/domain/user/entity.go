package user

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
	RoleClient   Role = "CLIENT"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleEmployee || r == RoleClient
}

// User is an account. A CLIENT must carry a ClientCompanyID link; the other
// roles never rely on it. Accounts are never hard-deleted: IsActive=false
// means "does not exist" on every path that enforces liveness.
type User struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    string
	Role            Role
	IsActive        bool
	ClientCompanyID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Join fields
	CompanyName *string
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Profile is the sanitized view of a User. It never carries the password
// hash.
type Profile struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Role            Role    `json:"role"`
	IsActive        bool    `json:"isActive"`
	ClientCompanyID *string `json:"clientCompanyId"`
}

func (u *User) Profile() Profile {
	return Profile{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Role:            u.Role,
		IsActive:        u.IsActive,
		ClientCompanyID: u.ClientCompanyID,
	}
}
