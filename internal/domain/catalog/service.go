package catalog

import "context"

type CatalogService interface {
	List(ctx context.Context) ([]Service, error)
	GetByID(ctx context.Context, id string) (Service, error)
	Create(ctx context.Context, req CreateServiceRequest) (Service, error)
	Update(ctx context.Context, id string, req UpdateServiceRequest) (Service, error)
	Delete(ctx context.Context, id string) error
}
