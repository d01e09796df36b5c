package project

import "time"

type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

func ValidStatus(s Status) bool {
	return s == StatusNotStarted || s == StatusInProgress || s == StatusCompleted
}

// Project belongs to exactly one client company and carries zero or more
// employee assignments. Status transitions are unordered; authorization is
// the only gate.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	ClientID    string    `json:"clientId"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Join fields
	ClientName  string       `json:"clientName,omitempty"`
	Assignments []Assignment `json:"assignments"`
}

// Assignment links an EMPLOYEE user to a project. (projectId, employeeId)
// pairs are unique.
type Assignment struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"projectId"`
	EmployeeID string    `json:"employeeId"`
	AssignedAt time.Time `json:"assignedAt"`

	// Join fields
	EmployeeName  string `json:"employeeName,omitempty"`
	EmployeeEmail string `json:"employeeEmail,omitempty"`
}

// AssignedEmployeeIDs returns the ids in the assignment list.
func (p *Project) AssignedEmployeeIDs() []string {
	ids := make([]string, 0, len(p.Assignments))
	for _, a := range p.Assignments {
		ids = append(ids, a.EmployeeID)
	}
	return ids
}
