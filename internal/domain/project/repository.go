package project

import (
	"context"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/user"
)

type UpdateParams struct {
	Name        *string
	Description *string
}

type ProjectRepository interface {
	// GetByID loads the project with its client name and assignments.
	GetByID(ctx context.Context, id string) (Project, error)
	ListAll(ctx context.Context) ([]Project, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Project, error)
	ListByCompany(ctx context.Context, companyID string) ([]Project, error)
	Create(ctx context.Context, p Project) (Project, error)
	Update(ctx context.Context, id string, params UpdateParams) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	// Delete removes the project row only; assignment rows are removed
	// separately inside the same transaction.
	Delete(ctx context.Context, id string) error
	DeleteAssignments(ctx context.Context, projectID string) error

	// Assign inserts assignment rows, skipping (project, employee) pairs
	// that already exist.
	Assign(ctx context.Context, projectID string, employeeIDs []string) error
	// Unassign removes one assignment and reports whether a row existed.
	Unassign(ctx context.Context, projectID, employeeID string) (bool, error)

	// HasAssignmentForCompany reports whether the employee holds at least
	// one assignment on a project belonging to the company.
	HasAssignmentForCompany(ctx context.Context, employeeID, companyID string) (bool, error)
	// CompanyIDsForEmployee returns the distinct client companies whose
	// projects the employee is assigned to.
	CompanyIDsForEmployee(ctx context.Context, employeeID string) ([]string, error)
	// ListEmployeesAssignedToCompany returns the distinct active employees
	// assigned to any project of the company.
	ListEmployeesAssignedToCompany(ctx context.Context, companyID string) ([]user.User, error)
}
