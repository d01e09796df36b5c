package message

import (
	"time"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/user"
)

// Message is immutable once created: no edit or delete operation exists.
// Whether it may exist at all is decided by the pairwise messaging rule at
// creation time; reads re-apply the same rule to the (viewer, peer) pair.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`

	// Join fields
	SenderName   string `json:"senderName,omitempty"`
	ReceiverName string `json:"receiverName,omitempty"`
}

// ChatPartner is one legally messageable peer, with a display category
// ("Management", "Support", "Project Team", or the client's company name).
type ChatPartner struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Role     user.Role `json:"role"`
	Category string    `json:"category"`
}
