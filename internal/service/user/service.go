package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/client"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
	client.ClientCompanyRepository
}

func NewUserService(userRepository user.UserRepository, companyRepository client.ClientCompanyRepository) user.UserService {
	return &UserServiceImpl{
		UserRepository:          userRepository,
		ClientCompanyRepository: companyRepository,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.Profile, error) {
	if err := req.Validate(); err != nil {
		return user.Profile{}, err
	}
	if req.Role == user.RoleClient && req.ClientCompanyID == nil {
		return user.Profile{}, user.ErrClientCompanyRequired
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if _, err := s.UserRepository.GetByEmail(ctx, email); err == nil {
		return user.Profile{}, user.ErrEmailExists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return user.Profile{}, fmt.Errorf("failed to check email: %w", err)
	}

	if req.ClientCompanyID != nil {
		if _, err := s.ClientCompanyRepository.GetByID(ctx, *req.ClientCompanyID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return user.Profile{}, client.ErrCompanyNotFound
			}
			return user.Profile{}, fmt.Errorf("failed to get client company: %w", err)
		}
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return user.Profile{}, err
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Name:            req.Name,
		Email:           email,
		PasswordHash:    passwordHash,
		Role:            req.Role,
		IsActive:        true,
		ClientCompanyID: req.ClientCompanyID,
	})
	if err != nil {
		return user.Profile{}, fmt.Errorf("failed to create user: %w", err)
	}
	return created.Profile(), nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context, query user.ListUsersQuery) (user.ListUsersResponse, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 || query.Limit > 100 {
		query.Limit = 10
	}

	users, total, err := s.UserRepository.List(ctx, query)
	if err != nil {
		return user.ListUsersResponse{}, fmt.Errorf("failed to list users: %w", err)
	}

	items := make([]user.Profile, 0, len(users))
	for i := range users {
		items = append(items, users[i].Profile())
	}
	return user.ListUsersResponse{
		Items: items,
		Total: total,
		Page:  query.Page,
		Limit: query.Limit,
	}, nil
}

// GetByID implements user.UserService. A deactivated account reads as not
// found.
func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (user.Profile, error) {
	userData, err := s.liveUser(ctx, id)
	if err != nil {
		return user.Profile{}, err
	}
	return userData.Profile(), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, id string, req user.UpdateUserRequest) (user.Profile, error) {
	if err := req.Validate(); err != nil {
		return user.Profile{}, err
	}

	if _, err := s.liveUser(ctx, id); err != nil {
		return user.Profile{}, err
	}

	params := user.UpdateParams{
		Name:            req.Name,
		Role:            req.Role,
		IsActive:        req.IsActive,
		ClientCompanyID: req.ClientCompanyID,
	}
	if req.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		if err := s.checkEmailFree(ctx, email, id); err != nil {
			return user.Profile{}, err
		}
		params.Email = &email
	}
	if req.Password != nil {
		passwordHash, err := hashPassword(*req.Password)
		if err != nil {
			return user.Profile{}, err
		}
		params.PasswordHash = &passwordHash
	}
	if req.ClientCompanyID != nil {
		if _, err := s.ClientCompanyRepository.GetByID(ctx, *req.ClientCompanyID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return user.Profile{}, client.ErrCompanyNotFound
			}
			return user.Profile{}, fmt.Errorf("failed to get client company: %w", err)
		}
	}

	updated, err := s.UserRepository.Update(ctx, id, params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, user.ErrUserNotFound
		}
		return user.Profile{}, fmt.Errorf("failed to update user: %w", err)
	}
	return updated.Profile(), nil
}

// UpdateOwnProfile implements user.UserService.
func (s *UserServiceImpl) UpdateOwnProfile(ctx context.Context, userID string, req user.UpdateOwnProfileRequest) (user.Profile, error) {
	if err := req.Validate(); err != nil {
		return user.Profile{}, err
	}

	params := user.UpdateParams{Name: req.Name}
	if req.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		if err := s.checkEmailFree(ctx, email, userID); err != nil {
			return user.Profile{}, err
		}
		params.Email = &email
	}
	if req.Password != nil {
		passwordHash, err := hashPassword(*req.Password)
		if err != nil {
			return user.Profile{}, err
		}
		params.PasswordHash = &passwordHash
	}

	updated, err := s.UserRepository.Update(ctx, userID, params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, user.ErrUserNotFound
		}
		return user.Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return updated.Profile(), nil
}

// Deactivate implements user.UserService.
func (s *UserServiceImpl) Deactivate(ctx context.Context, id string) error {
	if err := s.UserRepository.Deactivate(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return nil
}

func (s *UserServiceImpl) liveUser(ctx context.Context, id string) (user.User, error) {
	userData, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !userData.IsActive {
		return user.User{}, user.ErrUserNotFound
	}
	return userData, nil
}

// checkEmailFree rejects an email already held by a different account.
func (s *UserServiceImpl) checkEmailFree(ctx context.Context, email, selfID string) error {
	existing, err := s.UserRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("failed to check email: %w", err)
	}
	if existing.ID != selfID {
		return user.ErrEmailExists
	}
	return nil
}
