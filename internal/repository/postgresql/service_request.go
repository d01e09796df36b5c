package postgresql

import (
	"context"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/request"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type serviceRequestRepositoryImpl struct {
	db *database.DB
}

func NewServiceRequestRepository(db *database.DB) request.ServiceRequestRepository {
	return &serviceRequestRepositoryImpl{db: db}
}

const requestSelect = `
	SELECT r.id, r.client_id, r.service_id, r.status, r.details, r.created_by,
	       r.created_at, r.updated_at, s.name, c.name
	FROM service_requests r
	JOIN services s ON s.id = r.service_id
	JOIN client_companies c ON c.id = r.client_id`

func scanServiceRequest(row pgx.Row) (request.ServiceRequest, error) {
	var sr request.ServiceRequest
	err := row.Scan(
		&sr.ID, &sr.ClientID, &sr.ServiceID, &sr.Status, &sr.Details, &sr.CreatedBy,
		&sr.CreatedAt, &sr.UpdatedAt, &sr.ServiceName, &sr.ClientName,
	)
	return sr, err
}

// GetByID implements request.ServiceRequestRepository.
func (r *serviceRequestRepositoryImpl) GetByID(ctx context.Context, id string) (request.ServiceRequest, error) {
	q := GetQuerier(ctx, r.db)

	return scanServiceRequest(q.QueryRow(ctx, requestSelect+` WHERE r.id = $1`, id))
}

func (r *serviceRequestRepositoryImpl) list(ctx context.Context, where string, args ...interface{}) ([]request.ServiceRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, requestSelect+where+` ORDER BY r.created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []request.ServiceRequest
	for rows.Next() {
		sr, err := scanServiceRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, sr)
	}
	return requests, rows.Err()
}

// ListAll implements request.ServiceRequestRepository.
func (r *serviceRequestRepositoryImpl) ListAll(ctx context.Context) ([]request.ServiceRequest, error) {
	return r.list(ctx, ``)
}

// ListByCompany implements request.ServiceRequestRepository.
func (r *serviceRequestRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]request.ServiceRequest, error) {
	return r.list(ctx, ` WHERE r.client_id = $1`, companyID)
}

// Create implements request.ServiceRequestRepository.
func (r *serviceRequestRepositoryImpl) Create(ctx context.Context, sr request.ServiceRequest) (request.ServiceRequest, error) {
	q := GetQuerier(ctx, r.db)

	var id string
	err := q.QueryRow(ctx, `
		INSERT INTO service_requests (id, client_id, service_id, status, details, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		uuid.NewString(), sr.ClientID, sr.ServiceID, request.StatusPending, sr.Details, sr.CreatedBy,
	).Scan(&id)
	if err != nil {
		return request.ServiceRequest{}, err
	}
	return r.GetByID(ctx, id)
}

// MarkApproved implements request.ServiceRequestRepository.
func (r *serviceRequestRepositoryImpl) MarkApproved(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE service_requests SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, request.StatusApproved,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// CountByStatus implements request.ServiceRequestRepository.
func (r *serviceRequestRepositoryImpl) CountByStatus(ctx context.Context, status request.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM service_requests WHERE status = $1`, status).Scan(&count)
	return count, err
}
