package postgresql

import (
	"context"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/catalog"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type serviceRepositoryImpl struct {
	db *database.DB
}

func NewServiceRepository(db *database.DB) catalog.ServiceRepository {
	return &serviceRepositoryImpl{db: db}
}

// price is cast to text so the decimal survives the round trip unchanged.
const serviceColumns = `id, name, description, price::text, created_at, updated_at`

func scanService(row pgx.Row) (catalog.Service, error) {
	var s catalog.Service
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// List implements catalog.ServiceRepository.
func (r *serviceRepositoryImpl) List(ctx context.Context) ([]catalog.Service, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []catalog.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// GetByID implements catalog.ServiceRepository.
func (r *serviceRepositoryImpl) GetByID(ctx context.Context, id string) (catalog.Service, error) {
	q := GetQuerier(ctx, r.db)

	return scanService(q.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
}

// Create implements catalog.ServiceRepository.
func (r *serviceRepositoryImpl) Create(ctx context.Context, s catalog.Service) (catalog.Service, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO services (id, name, description, price)
		VALUES ($1, $2, $3, $4::numeric)
		RETURNING ` + serviceColumns
	return scanService(q.QueryRow(ctx, query, uuid.NewString(), s.Name, s.Description, s.Price))
}

// Update implements catalog.ServiceRepository.
func (r *serviceRepositoryImpl) Update(ctx context.Context, id string, params catalog.UpdateParams) (catalog.Service, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE services
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description),
		    price = COALESCE($4::numeric, price),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + serviceColumns
	return scanService(q.QueryRow(ctx, query, id, params.Name, params.Description, params.Price))
}

// Delete implements catalog.ServiceRepository.
func (r *serviceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
