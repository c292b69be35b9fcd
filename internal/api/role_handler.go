package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rosterhq/roster-api/internal/api/shared"
	"github.com/rosterhq/roster-api/internal/platform/logger"
	"github.com/rosterhq/roster-api/internal/service"
)

// RoleHandler handles role-related HTTP requests
type RoleHandler struct {
	roleService service.RoleService
	logger      *slog.Logger
}

// NewRoleHandler creates a new RoleHandler
func NewRoleHandler(roleService service.RoleService, logger *slog.Logger) *RoleHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for RoleHandler")
	}

	return &RoleHandler{
		roleService: roleService,
		logger:      logger.With(slog.String("component", "role_handler")),
	}
}

// ListRoles handles GET /api/roles requests
func (h *RoleHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	roles, err := h.roleService.ListRoles(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("listed roles", slog.Int("count", len(roles)))
	shared.RespondWithJSON(w, r, http.StatusOK, roles)
}

// GetRole handles GET /api/roles/{id} requests
func (h *RoleHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid role ID")
		return
	}

	role, err := h.roleService.GetRole(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, role)
}

// CreateRole handles POST /api/roles requests
func (h *RoleHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateRoleRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("failed to decode create role request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	role, err := h.roleService.CreateRole(r.Context(), req.Name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/roles/%d", role.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, role)
}

// UpdateRole handles PUT /api/roles/{id} requests
func (h *RoleHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid role ID")
		return
	}

	var req UpdateRoleRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if _, err := h.roleService.UpdateRole(r.Context(), id, service.RoleUpdate{Name: req.Name}); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Role updated successfully"})
}

// DeleteRole handles DELETE /api/roles/{id} requests
func (h *RoleHandler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid role ID")
		return
	}

	if err := h.roleService.DeleteRole(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
