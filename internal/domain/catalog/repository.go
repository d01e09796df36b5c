package catalog

import "context"

type UpdateParams struct {
	Name        *string
	Description *string
	Price       *string
}

type ServiceRepository interface {
	List(ctx context.Context) ([]Service, error)
	GetByID(ctx context.Context, id string) (Service, error)
	Create(ctx context.Context, s Service) (Service, error)
	Update(ctx context.Context, id string, params UpdateParams) (Service, error)
	Delete(ctx context.Context, id string) error
}
