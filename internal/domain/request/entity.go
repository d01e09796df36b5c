package request

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
)

// ServiceRequest is a client's ask for a catalog service. PENDING→APPROVED
// happens exactly once; approval atomically spawns a project.
type ServiceRequest struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	ServiceID string    `json:"serviceId"`
	Status    Status    `json:"status"`
	Details   *string   `json:"details"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Join fields
	ServiceName string `json:"serviceName,omitempty"`
	ClientName  string `json:"clientName,omitempty"`
}
