package client

import "time"

// ClientCompany is the customer organization a CLIENT user is linked to and
// that projects belong to.
type ClientCompany struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
