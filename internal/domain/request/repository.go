package request

import "context"

type ServiceRequestRepository interface {
	// GetByID loads the request with its service and client names.
	GetByID(ctx context.Context, id string) (ServiceRequest, error)
	ListAll(ctx context.Context) ([]ServiceRequest, error)
	ListByCompany(ctx context.Context, companyID string) ([]ServiceRequest, error)
	Create(ctx context.Context, r ServiceRequest) (ServiceRequest, error)
	MarkApproved(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status Status) (int64, error)
}
