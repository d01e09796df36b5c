package project

import (
	"context"

	"github.com/bizdesk/bizdesk-backend-go/internal/authz"
)

type ProjectService interface {
	// List is role-scoped: ADMIN sees every project, EMPLOYEE only assigned
	// ones, CLIENT only their company's.
	List(ctx context.Context, actor authz.Actor) ([]Project, error)
	GetByID(ctx context.Context, actor authz.Actor, id string) (Project, error)
	Create(ctx context.Context, req CreateProjectRequest) (Project, error)
	Update(ctx context.Context, id string, req UpdateProjectRequest) (Project, error)
	// Delete removes the project and its assignment rows atomically.
	Delete(ctx context.Context, id string) error
	Assign(ctx context.Context, id string, req AssignProjectRequest) (Project, error)
	Unassign(ctx context.Context, actor authz.Actor, projectID, employeeID string) error
	UpdateStatus(ctx context.Context, actor authz.Actor, id string, req UpdateProjectStatusRequest) (Project, error)
	// ListCompanyProjects backs the client-facing company listing; only a
	// CLIENT linked to the company may call it.
	ListCompanyProjects(ctx context.Context, actor authz.Actor, companyID string) ([]Project, error)
}
