package api

import (
	"log/slog"
	"net/http"

	"github.com/rosterhq/roster-api/internal/api/shared"
	"github.com/rosterhq/roster-api/internal/platform/logger"
	"github.com/rosterhq/roster-api/internal/service/auth"
)

// AuthHandler handles the token-issuing endpoint. There is no user store or
// login flow; the endpoint mints capability tokens from static configuration.
type AuthHandler struct {
	tokenService auth.TokenService
	logger       *slog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(tokenService auth.TokenService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AuthHandler")
	}

	return &AuthHandler{
		tokenService: tokenService,
		logger:       logger.With(slog.String("component", "auth_handler")),
	}
}

// IssueToken handles POST /api/auth/token requests
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	token, err := h.tokenService.IssueToken(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	log.Debug("issued bearer token")
	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}
