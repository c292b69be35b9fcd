package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rosterhq/roster-api/internal/api/shared"
	"github.com/rosterhq/roster-api/internal/platform/logger"
	"github.com/rosterhq/roster-api/internal/service"
)

// TeamHandler handles team-related HTTP requests
type TeamHandler struct {
	teamService service.TeamService
	logger      *slog.Logger
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(teamService service.TeamService, logger *slog.Logger) *TeamHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TeamHandler")
	}

	return &TeamHandler{
		teamService: teamService,
		logger:      logger.With(slog.String("component", "team_handler")),
	}
}

// ListTeams handles GET /api/teams requests
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("listed teams", slog.Int("count", len(teams)))
	shared.RespondWithJSON(w, r, http.StatusOK, teams)
}

// GetTeam handles GET /api/teams/{id} requests
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid team ID")
		return
	}

	team, err := h.teamService.GetTeam(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, team)
}

// CreateTeam handles POST /api/teams requests
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTeamRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("failed to decode create team request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), req.Name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/teams/%d", team.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, team)
}

// UpdateTeam handles PUT /api/teams/{id} requests
func (h *TeamHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid team ID")
		return
	}

	var req UpdateTeamRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if _, err := h.teamService.UpdateTeam(r.Context(), id, service.TeamUpdate{Name: req.Name}); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Team updated successfully"})
}

// DeleteTeam handles DELETE /api/teams/{id} requests
func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid team ID")
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
