package catalog

import "time"

// Service is a catalog entry clients can request. Price is a non-negative
// decimal carried as a string to avoid float drift.
type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       string    `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
