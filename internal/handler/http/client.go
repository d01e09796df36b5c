package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/client"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/project"
	"github.com/bizdesk/bizdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ClientCompanyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Projects(w http.ResponseWriter, r *http.Request)
}

type ClientCompanyHandlerImpl struct {
	companyService client.ClientCompanyService
	projectService project.ProjectService
}

func NewClientCompanyHandler(companyService client.ClientCompanyService, projectService project.ProjectService) ClientCompanyHandler {
	return &ClientCompanyHandlerImpl{
		companyService: companyService,
		projectService: projectService,
	}
}

// List implements ClientCompanyHandler.
func (h *ClientCompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyService.List(r.Context())
	if err != nil {
		slog.Error("List companies service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, companies)
}

// GetByID implements ClientCompanyHandler.
func (h *ClientCompanyHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	company, err := h.companyService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, company)
}

// Create implements ClientCompanyHandler.
func (h *ClientCompanyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req client.CreateClientCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create company decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	company, err := h.companyService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create company service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, company)
}

// Update implements ClientCompanyHandler.
func (h *ClientCompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req client.UpdateClientCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update company decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	company, err := h.companyService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Update company service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, company)
}

// Delete implements ClientCompanyHandler.
func (h *ClientCompanyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.companyService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete company service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}

// Projects implements ClientCompanyHandler. CLIENT-only; the service checks
// that the id is the caller's own company.
func (h *ClientCompanyHandlerImpl) Projects(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	projects, err := h.projectService.ListCompanyProjects(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, projects)
}
