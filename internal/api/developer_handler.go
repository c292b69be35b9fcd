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

// DeveloperHandler handles developer-related HTTP requests
type DeveloperHandler struct {
	developerService service.DeveloperService
	logger           *slog.Logger
}

// NewDeveloperHandler creates a new DeveloperHandler
func NewDeveloperHandler(
	developerService service.DeveloperService,
	logger *slog.Logger,
) *DeveloperHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DeveloperHandler")
	}

	return &DeveloperHandler{
		developerService: developerService,
		logger:           logger.With(slog.String("component", "developer_handler")),
	}
}

// ListDevelopers handles GET /api/developers requests
func (h *DeveloperHandler) ListDevelopers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	developers, err := h.developerService.ListDevelopers(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("listed developers", slog.Int("count", len(developers)))
	shared.RespondWithJSON(w, r, http.StatusOK, developers)
}

// GetDeveloper handles GET /api/developers/{id} requests
func (h *DeveloperHandler) GetDeveloper(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid developer ID")
		return
	}

	developer, err := h.developerService.GetDeveloper(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, developer)
}

// CreateDeveloper handles POST /api/developers requests
func (h *DeveloperHandler) CreateDeveloper(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateDeveloperRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("failed to decode create developer request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}

	dev := domain.NewDeveloper(req.FirstName, req.LastName, req.TeamID, req.RoleID)
	developer, err := h.developerService.CreateDeveloper(r.Context(), dev)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/developers/%d", developer.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, developer)
}

// UpdateDeveloper handles PUT /api/developers/{id} requests
func (h *DeveloperHandler) UpdateDeveloper(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid developer ID")
		return
	}

	var req UpdateDeveloperRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}

	patch := service.DeveloperUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		TeamID:    req.TeamID,
		RoleID:    req.RoleID,
	}
	if _, err := h.developerService.UpdateDeveloper(r.Context(), id, patch); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Developer updated successfully"})
}

// DeleteDeveloper handles DELETE /api/developers/{id} requests
func (h *DeveloperHandler) DeleteDeveloper(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid developer ID")
		return
	}

	if err := h.developerService.DeleteDeveloper(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
