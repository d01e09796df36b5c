package postgresql

import (
	"context"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/client"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type clientCompanyRepositoryImpl struct {
	db *database.DB
}

func NewClientCompanyRepository(db *database.DB) client.ClientCompanyRepository {
	return &clientCompanyRepositoryImpl{db: db}
}

const companyColumns = `id, name, created_at, updated_at`

func scanCompany(row pgx.Row) (client.ClientCompany, error) {
	var c client.ClientCompany
	err := row.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// List implements client.ClientCompanyRepository.
func (r *clientCompanyRepositoryImpl) List(ctx context.Context) ([]client.ClientCompany, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+companyColumns+` FROM client_companies ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []client.ClientCompany
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// GetByID implements client.ClientCompanyRepository.
func (r *clientCompanyRepositoryImpl) GetByID(ctx context.Context, id string) (client.ClientCompany, error) {
	q := GetQuerier(ctx, r.db)

	return scanCompany(q.QueryRow(ctx, `SELECT `+companyColumns+` FROM client_companies WHERE id = $1`, id))
}

// Create implements client.ClientCompanyRepository.
func (r *clientCompanyRepositoryImpl) Create(ctx context.Context, name string) (client.ClientCompany, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO client_companies (id, name)
		VALUES ($1, $2)
		RETURNING ` + companyColumns
	return scanCompany(q.QueryRow(ctx, query, uuid.NewString(), name))
}

// Update implements client.ClientCompanyRepository.
func (r *clientCompanyRepositoryImpl) Update(ctx context.Context, id, name string) (client.ClientCompany, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE client_companies
		SET name = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + companyColumns
	return scanCompany(q.QueryRow(ctx, query, id, name))
}

// Delete implements client.ClientCompanyRepository. No cascade: foreign keys
// from users or projects make this fail, and the caller maps that to a
// conflict.
func (r *clientCompanyRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM client_companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
