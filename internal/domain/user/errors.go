package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailExists           = errors.New("user with this email already exists")
	ErrClientCompanyRequired = errors.New("CLIENT role requires clientCompanyId")
	ErrAdminAccessRequired   = errors.New("admin access required")
)
