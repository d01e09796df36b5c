package message

import "github.com/bizdesk/bizdesk-backend-go/internal/pkg/validator"

type CreateMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
}

func (r *CreateMessageRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ReceiverID) {
		errs = append(errs, validator.ValidationError{
			Field:   "receiverId",
			Message: "receiverId is required",
		})
	} else if !validator.IsValidUUID(r.ReceiverID) {
		errs = append(errs, validator.ValidationError{
			Field:   "receiverId",
			Message: "receiverId must be a valid UUID",
		})
	}
	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ConversationQuery struct {
	PeerID string
	Page   int
	Limit  int
}

type ConversationResponse struct {
	Items []Message `json:"items"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}
