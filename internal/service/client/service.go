package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/client"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type ClientCompanyServiceImpl struct {
	client.ClientCompanyRepository
}

func NewClientCompanyService(companyRepository client.ClientCompanyRepository) client.ClientCompanyService {
	return &ClientCompanyServiceImpl{ClientCompanyRepository: companyRepository}
}

// List implements client.ClientCompanyService.
func (s *ClientCompanyServiceImpl) List(ctx context.Context) ([]client.ClientCompany, error) {
	companies, err := s.ClientCompanyRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list client companies: %w", err)
	}
	return companies, nil
}

// GetByID implements client.ClientCompanyService.
func (s *ClientCompanyServiceImpl) GetByID(ctx context.Context, id string) (client.ClientCompany, error) {
	company, err := s.ClientCompanyRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.ClientCompany{}, client.ErrCompanyNotFound
		}
		return client.ClientCompany{}, fmt.Errorf("failed to get client company: %w", err)
	}
	return company, nil
}

// Create implements client.ClientCompanyService.
func (s *ClientCompanyServiceImpl) Create(ctx context.Context, req client.CreateClientCompanyRequest) (client.ClientCompany, error) {
	if err := req.Validate(); err != nil {
		return client.ClientCompany{}, err
	}
	company, err := s.ClientCompanyRepository.Create(ctx, req.Name)
	if err != nil {
		return client.ClientCompany{}, fmt.Errorf("failed to create client company: %w", err)
	}
	return company, nil
}

// Update implements client.ClientCompanyService.
func (s *ClientCompanyServiceImpl) Update(ctx context.Context, id string, req client.UpdateClientCompanyRequest) (client.ClientCompany, error) {
	if err := req.Validate(); err != nil {
		return client.ClientCompany{}, err
	}
	company, err := s.ClientCompanyRepository.Update(ctx, id, req.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.ClientCompany{}, client.ErrCompanyNotFound
		}
		return client.ClientCompany{}, fmt.Errorf("failed to update client company: %w", err)
	}
	return company, nil
}

// Delete implements client.ClientCompanyService. The store's foreign keys
// decide whether the company is still referenced.
func (s *ClientCompanyServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.ClientCompanyRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.ErrCompanyNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return client.ErrCompanyInUse
		}
		return fmt.Errorf("failed to delete client company: %w", err)
	}
	return nil
}
