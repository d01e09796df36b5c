package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bizdesk/bizdesk-backend-go/internal/domain/project"
	"github.com/bizdesk/bizdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ProjectHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Unassign(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &ProjectHandlerImpl{projectService: projectService}
}

// List implements ProjectHandler. The same endpoint serves all three roles;
// the service scopes the result to what the actor may see.
func (h *ProjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	projects, err := h.projectService.List(r.Context(), actor)
	if err != nil {
		slog.Error("List projects service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, projects)
}

// GetByID implements ProjectHandler.
func (h *ProjectHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	p, err := h.projectService.GetByID(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, p)
}

// Create implements ProjectHandler.
func (h *ProjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create project decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	p, err := h.projectService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create project service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, p)
}

// Update implements ProjectHandler.
func (h *ProjectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req project.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update project decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	p, err := h.projectService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Update project service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, p)
}

// Delete implements ProjectHandler.
func (h *ProjectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete project service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}

// Assign implements ProjectHandler.
func (h *ProjectHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req project.AssignProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Assign project decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	p, err := h.projectService.Assign(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Assign project service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, p)
}

// Unassign implements ProjectHandler.
func (h *ProjectHandlerImpl) Unassign(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	err := h.projectService.Unassign(r.Context(), actor, chi.URLParam(r, "id"), chi.URLParam(r, "employeeId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}

// UpdateStatus implements ProjectHandler.
func (h *ProjectHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	var req project.UpdateProjectStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update status decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	p, err := h.projectService.UpdateStatus(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Update status service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, p)
}
