package request

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizdesk/bizdesk-backend-go/internal/authz"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/catalog"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/client"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/project"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/request"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/user"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/database"
	"github.com/bizdesk/bizdesk-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type ServiceRequestServiceImpl struct {
	db *database.DB
	request.ServiceRequestRepository
	catalog.ServiceRepository
	client.ClientCompanyRepository
	project.ProjectRepository
}

func NewServiceRequestService(db *database.DB, requestRepository request.ServiceRequestRepository, serviceRepository catalog.ServiceRepository, companyRepository client.ClientCompanyRepository, projectRepository project.ProjectRepository) request.ServiceRequestService {
	return &ServiceRequestServiceImpl{
		db:                       db,
		ServiceRequestRepository: requestRepository,
		ServiceRepository:        serviceRepository,
		ClientCompanyRepository:  companyRepository,
		ProjectRepository:        projectRepository,
	}
}

// List implements request.ServiceRequestService.
func (s *ServiceRequestServiceImpl) List(ctx context.Context, actor authz.Actor) ([]request.ServiceRequest, error) {
	var (
		requests []request.ServiceRequest
		err      error
	)
	switch actor.Role {
	case user.RoleAdmin:
		requests, err = s.ServiceRequestRepository.ListAll(ctx)
	case user.RoleClient:
		if actor.ClientCompanyID == nil {
			return []request.ServiceRequest{}, nil
		}
		requests, err = s.ServiceRequestRepository.ListByCompany(ctx, *actor.ClientCompanyID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list service requests: %w", err)
	}
	if requests == nil {
		requests = []request.ServiceRequest{}
	}
	return requests, nil
}

// Create implements request.ServiceRequestService.
func (s *ServiceRequestServiceImpl) Create(ctx context.Context, actor authz.Actor, req request.CreateServiceRequestRequest) (request.ServiceRequest, error) {
	if err := req.Validate(); err != nil {
		return request.ServiceRequest{}, err
	}
	if err := authz.CanCreateServiceRequest(actor, req.ClientID).Err(); err != nil {
		return request.ServiceRequest{}, err
	}

	if _, err := s.ServiceRepository.GetByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.ServiceRequest{}, catalog.ErrServiceNotFound
		}
		return request.ServiceRequest{}, fmt.Errorf("failed to get service: %w", err)
	}
	if _, err := s.ClientCompanyRepository.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.ServiceRequest{}, client.ErrCompanyNotFound
		}
		return request.ServiceRequest{}, fmt.Errorf("failed to get client company: %w", err)
	}

	created, err := s.ServiceRequestRepository.Create(ctx, request.ServiceRequest{
		ClientID:  req.ClientID,
		ServiceID: req.ServiceID,
		Details:   req.Details,
		CreatedBy: actor.ID,
	})
	if err != nil {
		return request.ServiceRequest{}, fmt.Errorf("failed to create service request: %w", err)
	}
	return created, nil
}

// Approve implements request.ServiceRequestService. The status flip and the
// spawned project commit or roll back together.
func (s *ServiceRequestServiceImpl) Approve(ctx context.Context, actor authz.Actor, id string) (request.ServiceRequest, error) {
	if err := authz.CanApproveServiceRequest(actor).Err(); err != nil {
		return request.ServiceRequest{}, err
	}

	sr, err := s.ServiceRequestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.ServiceRequest{}, request.ErrRequestNotFound
		}
		return request.ServiceRequest{}, fmt.Errorf("failed to get service request: %w", err)
	}
	if sr.Status == request.StatusApproved {
		return request.ServiceRequest{}, request.ErrAlreadyApproved
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.ServiceRequestRepository.MarkApproved(txCtx, id); err != nil {
			return fmt.Errorf("failed to mark request approved: %w", err)
		}
		_, err := s.ProjectRepository.Create(txCtx, project.Project{
			Name:        fmt.Sprintf("%s for %s", sr.ServiceName, sr.ClientName),
			Description: sr.Details,
			ClientID:    sr.ClientID,
			Status:      project.StatusNotStarted,
		})
		if err != nil {
			return fmt.Errorf("failed to create project from request: %w", err)
		}
		return nil
	})
	if err != nil {
		return request.ServiceRequest{}, err
	}

	approved, err := s.ServiceRequestRepository.GetByID(ctx, id)
	if err != nil {
		return request.ServiceRequest{}, fmt.Errorf("failed to reload service request: %w", err)
	}
	return approved, nil
}
