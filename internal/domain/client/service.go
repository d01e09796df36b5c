package client

import "context"

type ClientCompanyService interface {
	List(ctx context.Context) ([]ClientCompany, error)
	GetByID(ctx context.Context, id string) (ClientCompany, error)
	Create(ctx context.Context, req CreateClientCompanyRequest) (ClientCompany, error)
	Update(ctx context.Context, id string, req UpdateClientCompanyRequest) (ClientCompany, error)
	Delete(ctx context.Context, id string) error
}
