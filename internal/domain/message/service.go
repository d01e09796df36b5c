package message

import (
	"context"

	"github.com/bizdesk/bizdesk-backend-go/internal/authz"
)

type MessageService interface {
	Send(ctx context.Context, actor authz.Actor, req CreateMessageRequest) (Message, error)
	// Conversation re-applies the messaging rule to the (viewer, peer) pair
	// before returning anything, so a revoked relationship closes off
	// history too.
	Conversation(ctx context.Context, actor authz.Actor, query ConversationQuery) (ConversationResponse, error)
	// ChatPartners lists exactly the peers the actor could legally message
	// right now, grouped by display category.
	ChatPartners(ctx context.Context, actor authz.Actor) ([]ChatPartner, error)
}
