package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rosterhq/roster-api/internal/api/shared"
	"github.com/rosterhq/roster-api/internal/domain"
	"github.com/rosterhq/roster-api/internal/platform/logger"
	"github.com/rosterhq/roster-api/internal/service"
)

// ProjectTypeHandler handles project-type HTTP requests. The update route is
// a full replace rather than a merge, matching the published contract.
type ProjectTypeHandler struct {
	projectTypeService service.ProjectTypeService
	logger             *slog.Logger
}

// NewProjectTypeHandler creates a new ProjectTypeHandler
func NewProjectTypeHandler(
	projectTypeService service.ProjectTypeService,
	logger *slog.Logger,
) *ProjectTypeHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ProjectTypeHandler")
	}

	return &ProjectTypeHandler{
		projectTypeService: projectTypeService,
		logger:             logger.With(slog.String("component", "project_type_handler")),
	}
}

// ListProjectTypes handles GET /api/project-types requests
func (h *ProjectTypeHandler) ListProjectTypes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	types, err := h.projectTypeService.ListProjectTypes(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("listed project types", slog.Int("count", len(types)))
	shared.RespondWithJSON(w, r, http.StatusOK, types)
}

// GetProjectType handles GET /api/project-types/{id} requests
func (h *ProjectTypeHandler) GetProjectType(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid project type ID")
		return
	}

	pt, err := h.projectTypeService.GetProjectType(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, pt)
}

// CreateProjectType handles POST /api/project-types requests
func (h *ProjectTypeHandler) CreateProjectType(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateProjectTypeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("failed to decode create project type request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	pt, err := h.projectTypeService.CreateProjectType(r.Context(), req.Name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/project-types/%d", pt.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, pt)
}

// ReplaceProjectType handles PUT /api/project-types/{id} requests.
// Unlike the merge-updates elsewhere, this replaces the full row and requires
// the payload id to match the path id. Success is 204 with no body.
func (h *ProjectTypeHandler) ReplaceProjectType(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid project type ID")
		return
	}

	var req ReplaceProjectTypeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	pt := &domain.ProjectType{ID: req.ID, Name: req.Name}
	if err := h.projectTypeService.ReplaceProjectType(r.Context(), id, pt); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteProjectType handles DELETE /api/project-types/{id} requests
func (h *ProjectTypeHandler) DeleteProjectType(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid project type ID")
		return
	}

	if err := h.projectTypeService.DeleteProjectType(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
