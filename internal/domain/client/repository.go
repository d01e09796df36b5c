package client

import "context"

type ClientCompanyRepository interface {
	List(ctx context.Context) ([]ClientCompany, error)
	GetByID(ctx context.Context, id string) (ClientCompany, error)
	Create(ctx context.Context, name string) (ClientCompany, error)
	Update(ctx context.Context, id, name string) (ClientCompany, error)
	Delete(ctx context.Context, id string) error
}
