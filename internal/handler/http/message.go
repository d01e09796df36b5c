package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/message"
	"github.com/bizdesk/bizdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type MessageHandler interface {
	Send(w http.ResponseWriter, r *http.Request)
	Conversation(w http.ResponseWriter, r *http.Request)
	Partners(w http.ResponseWriter, r *http.Request)
}

type MessageHandlerImpl struct {
	messageService message.MessageService
}

func NewMessageHandler(messageService message.MessageService) MessageHandler {
	return &MessageHandlerImpl{messageService: messageService}
}

// Send implements MessageHandler.
func (h *MessageHandlerImpl) Send(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	var req message.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Send message decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	created, err := h.messageService.Send(r.Context(), actor, req)
	if err != nil {
		slog.Error("Send message service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

// Conversation implements MessageHandler.
func (h *MessageHandlerImpl) Conversation(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	query := message.ConversationQuery{
		PeerID: chi.URLParam(r, "peerId"),
		Page:   parseIntQuery(r, "page"),
		Limit:  parseIntQuery(r, "limit"),
	}

	conversation, err := h.messageService.Conversation(r.Context(), actor, query)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, conversation)
}

// Partners implements MessageHandler.
func (h *MessageHandlerImpl) Partners(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	partners, err := h.messageService.ChatPartners(r.Context(), actor)
	if err != nil {
		slog.Error("Chat partners service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, partners)
}
