package postgresql

import (
	"context"
	"strings"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/user"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, name, email, password_hash, role, is_active, client_company_id, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.IsActive,
		&u.ClientCompanyID,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// GetByEmail implements user.UserRepository. Emails are stored lowercase and
// looked up case-insensitively.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(q.QueryRow(ctx, query, strings.ToLower(email)))
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(q.QueryRow(ctx, query, id))
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, name, email, password_hash, role, is_active, client_company_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	return scanUser(q.QueryRow(ctx, query,
		uuid.NewString(),
		newUser.Name,
		strings.ToLower(newUser.Email),
		newUser.PasswordHash,
		newUser.Role,
		newUser.IsActive,
		newUser.ClientCompanyID,
	))
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, id string, params user.UpdateParams) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET name = COALESCE($2, name),
		    email = COALESCE(LOWER($3), email),
		    password_hash = COALESCE($4, password_hash),
		    role = COALESCE($5, role),
		    is_active = COALESCE($6, is_active),
		    client_company_id = COALESCE($7, client_company_id),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	return scanUser(q.QueryRow(ctx, query,
		id,
		params.Name,
		params.Email,
		params.PasswordHash,
		params.Role,
		params.IsActive,
		params.ClientCompanyID,
	))
}

// List implements user.UserRepository. Inactive users are invisible here.
func (r *userRepositoryImpl) List(ctx context.Context, query user.ListUsersQuery) ([]user.User, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `WHERE is_active = TRUE`
	args := []interface{}{}
	if query.Role != nil {
		where += ` AND role = $1`
		args = append(args, *query.Role)
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	listQuery := `SELECT ` + userColumns + ` FROM users ` + where +
		` ORDER BY created_at DESC LIMIT ` + placeholder(len(args)+1) + ` OFFSET ` + placeholder(len(args)+2)
	args = append(args, query.Limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

// Deactivate implements user.UserRepository (soft delete).
func (r *userRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListActiveExcept implements user.UserRepository.
func (r *userRepositoryImpl) ListActiveExcept(ctx context.Context, id string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.name, u.email, u.password_hash, u.role, u.is_active,
		       u.client_company_id, u.created_at, u.updated_at, c.name
		FROM users u
		LEFT JOIN client_companies c ON c.id = u.client_company_id
		WHERE u.is_active = TRUE AND u.id <> $1
		ORDER BY u.name ASC`

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive,
			&u.ClientCompanyID, &u.CreatedAt, &u.UpdatedAt, &u.CompanyName,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// ListActiveByRole implements user.UserRepository.
func (r *userRepositoryImpl) ListActiveByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE is_active = TRUE AND role = $1 ORDER BY name ASC`
	rows, err := q.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// ListActiveClientsByCompanies implements user.UserRepository.
func (r *userRepositoryImpl) ListActiveClientsByCompanies(ctx context.Context, companyIDs []string) ([]user.User, error) {
	if len(companyIDs) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.name, u.email, u.password_hash, u.role, u.is_active,
		       u.client_company_id, u.created_at, u.updated_at, c.name
		FROM users u
		JOIN client_companies c ON c.id = u.client_company_id
		WHERE u.is_active = TRUE AND u.role = $1 AND u.client_company_id = ANY($2)
		ORDER BY u.name ASC`

	rows, err := q.Query(ctx, query, user.RoleClient, companyIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive,
			&u.ClientCompanyID, &u.CreatedAt, &u.UpdatedAt, &u.CompanyName,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
