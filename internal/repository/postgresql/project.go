package postgresql

import (
	"context"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/project"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/user"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

const projectSelect = `
	SELECT p.id, p.name, p.description, p.client_id, p.status, p.created_at, p.updated_at, c.name
	FROM projects p
	JOIN client_companies c ON c.id = p.client_id`

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.ClientID, &p.Status, &p.CreatedAt, &p.UpdatedAt, &p.ClientName)
	return p, err
}

// GetByID implements project.ProjectRepository.
func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanProject(q.QueryRow(ctx, projectSelect+` WHERE p.id = $1`, id))
	if err != nil {
		return project.Project{}, err
	}
	if err := r.attachAssignments(ctx, []*project.Project{&p}); err != nil {
		return project.Project{}, err
	}
	return p, nil
}

func (r *projectRepositoryImpl) list(ctx context.Context, where string, args ...interface{}) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, projectSelect+where+` ORDER BY p.updated_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*project.Project, len(projects))
	for i := range projects {
		refs[i] = &projects[i]
	}
	if err := r.attachAssignments(ctx, refs); err != nil {
		return nil, err
	}
	return projects, nil
}

// attachAssignments loads the assignment lists for the given projects in a
// single query.
func (r *projectRepositoryImpl) attachAssignments(ctx context.Context, projects []*project.Project) error {
	if len(projects) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	ids := make([]string, len(projects))
	byID := make(map[string]*project.Project, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
		byID[p.ID] = p
		p.Assignments = []project.Assignment{}
	}

	query := `
		SELECT pe.id, pe.project_id, pe.employee_id, pe.assigned_at, u.name, u.email
		FROM project_employees pe
		JOIN users u ON u.id = pe.employee_id
		WHERE pe.project_id = ANY($1)
		ORDER BY pe.assigned_at ASC`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a project.Assignment
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.EmployeeID, &a.AssignedAt, &a.EmployeeName, &a.EmployeeEmail); err != nil {
			return err
		}
		if p, ok := byID[a.ProjectID]; ok {
			p.Assignments = append(p.Assignments, a)
		}
	}
	return rows.Err()
}

// ListAll implements project.ProjectRepository.
func (r *projectRepositoryImpl) ListAll(ctx context.Context) ([]project.Project, error) {
	return r.list(ctx, ``)
}

// ListByEmployee implements project.ProjectRepository.
func (r *projectRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]project.Project, error) {
	return r.list(ctx, ` WHERE EXISTS (
		SELECT 1 FROM project_employees pe WHERE pe.project_id = p.id AND pe.employee_id = $1
	)`, employeeID)
}

// ListByCompany implements project.ProjectRepository.
func (r *projectRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]project.Project, error) {
	return r.list(ctx, ` WHERE p.client_id = $1`, companyID)
}

// Create implements project.ProjectRepository.
func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	status := p.Status
	if status == "" {
		status = project.StatusNotStarted
	}

	var id string
	err := q.QueryRow(ctx, `
		INSERT INTO projects (id, name, description, client_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		uuid.NewString(), p.Name, p.Description, p.ClientID, status,
	).Scan(&id)
	if err != nil {
		return project.Project{}, err
	}
	return r.GetByID(ctx, id)
}

// Update implements project.ProjectRepository.
func (r *projectRepositoryImpl) Update(ctx context.Context, id string, params project.UpdateParams) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE projects
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description),
		    updated_at = NOW()
		WHERE id = $1`,
		id, params.Name, params.Description,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateStatus implements project.ProjectRepository.
func (r *projectRepositoryImpl) UpdateStatus(ctx context.Context, id string, status project.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE projects SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete implements project.ProjectRepository.
func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteAssignments implements project.ProjectRepository.
func (r *projectRepositoryImpl) DeleteAssignments(ctx context.Context, projectID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM project_employees WHERE project_id = $1`, projectID)
	return err
}

// Assign implements project.ProjectRepository. Existing pairs are skipped.
func (r *projectRepositoryImpl) Assign(ctx context.Context, projectID string, employeeIDs []string) error {
	q := GetQuerier(ctx, r.db)

	for _, employeeID := range employeeIDs {
		_, err := q.Exec(ctx, `
			INSERT INTO project_employees (id, project_id, employee_id)
			VALUES ($1, $2, $3)
			ON CONFLICT (project_id, employee_id) DO NOTHING`,
			uuid.NewString(), projectID, employeeID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// Unassign implements project.ProjectRepository.
func (r *projectRepositoryImpl) Unassign(ctx context.Context, projectID, employeeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM project_employees WHERE project_id = $1 AND employee_id = $2`,
		projectID, employeeID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// HasAssignmentForCompany implements project.ProjectRepository.
func (r *projectRepositoryImpl) HasAssignmentForCompany(ctx context.Context, employeeID, companyID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM project_employees pe
			JOIN projects p ON p.id = pe.project_id
			WHERE pe.employee_id = $1 AND p.client_id = $2
		)`, employeeID, companyID,
	).Scan(&exists)
	return exists, err
}

// CompanyIDsForEmployee implements project.ProjectRepository.
func (r *projectRepositoryImpl) CompanyIDsForEmployee(ctx context.Context, employeeID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT DISTINCT p.client_id
		FROM project_employees pe
		JOIN projects p ON p.id = pe.project_id
		WHERE pe.employee_id = $1`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListEmployeesAssignedToCompany implements project.ProjectRepository.
func (r *projectRepositoryImpl) ListEmployeesAssignedToCompany(ctx context.Context, companyID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT u.id, u.name, u.email, u.password_hash, u.role, u.is_active,
		       u.client_company_id, u.created_at, u.updated_at
		FROM project_employees pe
		JOIN projects p ON p.id = pe.project_id
		JOIN users u ON u.id = pe.employee_id
		WHERE p.client_id = $1 AND u.is_active = TRUE`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
