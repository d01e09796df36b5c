package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/catalog"
	"github.com/bizdesk/bizdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ServiceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ServiceHandlerImpl struct {
	catalogService catalog.CatalogService
}

func NewServiceHandler(catalogService catalog.CatalogService) ServiceHandler {
	return &ServiceHandlerImpl{catalogService: catalogService}
}

// List implements ServiceHandler.
func (h *ServiceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogService.List(r.Context())
	if err != nil {
		slog.Error("List services service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, services)
}

// GetByID implements ServiceHandler.
func (h *ServiceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	svc, err := h.catalogService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, svc)
}

// Create implements ServiceHandler.
func (h *ServiceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create service decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	svc, err := h.catalogService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create service service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, svc)
}

// Update implements ServiceHandler.
func (h *ServiceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req catalog.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update service decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	svc, err := h.catalogService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Update service service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, svc)
}

// Delete implements ServiceHandler.
func (h *ServiceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete service service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}
