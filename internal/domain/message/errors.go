package message

import "errors"

var (
	ErrReceiverNotFound       = errors.New("receiver not found")
	ErrConversationNotAllowed = errors.New("you are not allowed to view this conversation")
)
