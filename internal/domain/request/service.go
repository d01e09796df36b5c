package request

import (
	"context"

	"github.com/bizdesk/bizdesk-backend-go/internal/authz"
)

type ServiceRequestService interface {
	// List returns every request for ADMIN and the caller's company's
	// requests for CLIENT. A CLIENT without a company link sees an empty
	// list, not an error.
	List(ctx context.Context, actor authz.Actor) ([]ServiceRequest, error)
	Create(ctx context.Context, actor authz.Actor, req CreateServiceRequestRequest) (ServiceRequest, error)
	// Approve flips PENDING to APPROVED and spawns the project in one
	// transaction. Approving twice is a conflict, not a no-op.
	Approve(ctx context.Context, actor authz.Actor, id string) (ServiceRequest, error)
}
