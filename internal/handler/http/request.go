package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/request"
	"github.com/bizdesk/bizdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ServiceRequestHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
}

type ServiceRequestHandlerImpl struct {
	requestService request.ServiceRequestService
}

func NewServiceRequestHandler(requestService request.ServiceRequestService) ServiceRequestHandler {
	return &ServiceRequestHandlerImpl{requestService: requestService}
}

// List implements ServiceRequestHandler.
func (h *ServiceRequestHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	requests, err := h.requestService.List(r.Context(), actor)
	if err != nil {
		slog.Error("List requests service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, requests)
}

// Create implements ServiceRequestHandler.
func (h *ServiceRequestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	var req request.CreateServiceRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create request decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	created, err := h.requestService.Create(r.Context(), actor, req)
	if err != nil {
		slog.Error("Create request service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

// Approve implements ServiceRequestHandler.
func (h *ServiceRequestHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	approved, err := h.requestService.Approve(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Approve request service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, approved)
}
