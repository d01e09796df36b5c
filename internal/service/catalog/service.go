package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/catalog"
	"github.com/jackc/pgx/v5"
)

type CatalogServiceImpl struct {
	catalog.ServiceRepository
}

func NewCatalogService(serviceRepository catalog.ServiceRepository) catalog.CatalogService {
	return &CatalogServiceImpl{ServiceRepository: serviceRepository}
}

// List implements catalog.CatalogService.
func (s *CatalogServiceImpl) List(ctx context.Context) ([]catalog.Service, error) {
	services, err := s.ServiceRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	if services == nil {
		services = []catalog.Service{}
	}
	return services, nil
}

// GetByID implements catalog.CatalogService.
func (s *CatalogServiceImpl) GetByID(ctx context.Context, id string) (catalog.Service, error) {
	svc, err := s.ServiceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Service{}, catalog.ErrServiceNotFound
		}
		return catalog.Service{}, fmt.Errorf("failed to get service: %w", err)
	}
	return svc, nil
}

// Create implements catalog.CatalogService.
func (s *CatalogServiceImpl) Create(ctx context.Context, req catalog.CreateServiceRequest) (catalog.Service, error) {
	if err := req.Validate(); err != nil {
		return catalog.Service{}, err
	}
	svc, err := s.ServiceRepository.Create(ctx, catalog.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return catalog.Service{}, fmt.Errorf("failed to create service: %w", err)
	}
	return svc, nil
}

// Update implements catalog.CatalogService.
func (s *CatalogServiceImpl) Update(ctx context.Context, id string, req catalog.UpdateServiceRequest) (catalog.Service, error) {
	if err := req.Validate(); err != nil {
		return catalog.Service{}, err
	}
	svc, err := s.ServiceRepository.Update(ctx, id, catalog.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Service{}, catalog.ErrServiceNotFound
		}
		return catalog.Service{}, fmt.Errorf("failed to update service: %w", err)
	}
	return svc, nil
}

// Delete implements catalog.CatalogService.
func (s *CatalogServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.ServiceRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.ErrServiceNotFound
		}
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}
