package message

import "context"

type MessageRepository interface {
	Create(ctx context.Context, m Message) (Message, error)
	// Conversation returns the page of messages exchanged between the two
	// users, newest first, plus the total count for the pair.
	Conversation(ctx context.Context, userID, peerID string, page, limit int) ([]Message, int64, error)
}
