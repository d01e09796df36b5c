package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizdesk/bizdesk-backend-go/internal/authz"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/client"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/project"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/user"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/database"
	"github.com/bizdesk/bizdesk-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type ProjectServiceImpl struct {
	db *database.DB
	project.ProjectRepository
	client.ClientCompanyRepository
	user.UserRepository
}

func NewProjectService(db *database.DB, projectRepository project.ProjectRepository, companyRepository client.ClientCompanyRepository, userRepository user.UserRepository) project.ProjectService {
	return &ProjectServiceImpl{
		db:                      db,
		ProjectRepository:       projectRepository,
		ClientCompanyRepository: companyRepository,
		UserRepository:          userRepository,
	}
}

// List implements project.ProjectService.
func (s *ProjectServiceImpl) List(ctx context.Context, actor authz.Actor) ([]project.Project, error) {
	var (
		projects []project.Project
		err      error
	)
	switch actor.Role {
	case user.RoleAdmin:
		projects, err = s.ProjectRepository.ListAll(ctx)
	case user.RoleEmployee:
		projects, err = s.ProjectRepository.ListByEmployee(ctx, actor.ID)
	case user.RoleClient:
		if actor.ClientCompanyID == nil {
			return []project.Project{}, nil
		}
		projects, err = s.ProjectRepository.ListByCompany(ctx, *actor.ClientCompanyID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if projects == nil {
		projects = []project.Project{}
	}
	return projects, nil
}

// GetByID implements project.ProjectService.
func (s *ProjectServiceImpl) GetByID(ctx context.Context, actor authz.Actor, id string) (project.Project, error) {
	p, err := s.getProject(ctx, id)
	if err != nil {
		return project.Project{}, err
	}
	if err := authz.CanViewProject(actor, projectFacts(&p)).Err(); err != nil {
		return project.Project{}, err
	}
	return p, nil
}

// Create implements project.ProjectService.
func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}
	if _, err := s.ClientCompanyRepository.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, client.ErrCompanyNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get client company: %w", err)
	}

	created, err := s.ProjectRepository.Create(ctx, project.Project{
		Name:        req.Name,
		Description: req.Description,
		ClientID:    req.ClientID,
		Status:      project.StatusNotStarted,
	})
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

// Update implements project.ProjectService.
func (s *ProjectServiceImpl) Update(ctx context.Context, id string, req project.UpdateProjectRequest) (project.Project, error) {
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}
	err := s.ProjectRepository.Update(ctx, id, project.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to update project: %w", err)
	}
	return s.getProject(ctx, id)
}

// Delete implements project.ProjectService. Assignment rows go first so the
// project row never leaves dangling references; both happen in one
// transaction.
func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.ProjectRepository.DeleteAssignments(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete assignments: %w", err)
		}
		return s.ProjectRepository.Delete(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.ErrProjectNotFound
		}
		return err
	}
	return nil
}

// Assign implements project.ProjectService. Every id must belong to an
// active EMPLOYEE; one bad id rejects the whole batch. Already-assigned
// pairs are skipped silently.
func (s *ProjectServiceImpl) Assign(ctx context.Context, id string, req project.AssignProjectRequest) (project.Project, error) {
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}
	if _, err := s.getProject(ctx, id); err != nil {
		return project.Project{}, err
	}

	for _, employeeID := range req.EmployeeIDs {
		u, err := s.UserRepository.GetByID(ctx, employeeID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return project.Project{}, project.ErrInvalidEmployees
			}
			return project.Project{}, fmt.Errorf("failed to get user: %w", err)
		}
		if !u.IsActive || u.Role != user.RoleEmployee {
			return project.Project{}, project.ErrInvalidEmployees
		}
	}

	if err := s.ProjectRepository.Assign(ctx, id, req.EmployeeIDs); err != nil {
		return project.Project{}, fmt.Errorf("failed to assign employees: %w", err)
	}
	return s.getProject(ctx, id)
}

// Unassign implements project.ProjectService.
func (s *ProjectServiceImpl) Unassign(ctx context.Context, actor authz.Actor, projectID, employeeID string) error {
	if err := authz.CanUnassign(actor, employeeID).Err(); err != nil {
		return err
	}
	if _, err := s.getProject(ctx, projectID); err != nil {
		return err
	}

	removed, err := s.ProjectRepository.Unassign(ctx, projectID, employeeID)
	if err != nil {
		return fmt.Errorf("failed to unassign employee: %w", err)
	}
	if !removed {
		return project.ErrAssignmentNotFound
	}
	return nil
}

// UpdateStatus implements project.ProjectService.
func (s *ProjectServiceImpl) UpdateStatus(ctx context.Context, actor authz.Actor, id string, req project.UpdateProjectStatusRequest) (project.Project, error) {
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}
	p, err := s.getProject(ctx, id)
	if err != nil {
		return project.Project{}, err
	}
	if err := authz.CanUpdateProjectStatus(actor, projectFacts(&p)).Err(); err != nil {
		return project.Project{}, err
	}

	if err := s.ProjectRepository.UpdateStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to update project status: %w", err)
	}
	return s.getProject(ctx, id)
}

// ListCompanyProjects implements project.ProjectService.
func (s *ProjectServiceImpl) ListCompanyProjects(ctx context.Context, actor authz.Actor, companyID string) ([]project.Project, error) {
	if err := authz.CanListCompanyProjects(actor, companyID).Err(); err != nil {
		return nil, err
	}
	if _, err := s.ClientCompanyRepository.GetByID(ctx, companyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, client.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get client company: %w", err)
	}

	projects, err := s.ProjectRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company projects: %w", err)
	}
	if projects == nil {
		projects = []project.Project{}
	}
	return projects, nil
}

func (s *ProjectServiceImpl) getProject(ctx context.Context, id string) (project.Project, error) {
	p, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

func projectFacts(p *project.Project) authz.ProjectFacts {
	return authz.ProjectFacts{
		ClientCompanyID:     p.ClientID,
		AssignedEmployeeIDs: p.AssignedEmployeeIDs(),
	}
}
