package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/agency_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/agency_ledger_app/internal/dto"
	"github.com/SscSPs/agency_ledger_app/internal/middleware"
	"github.com/SscSPs/agency_ledger_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles login, logout and the current principal.
type AuthHandler struct {
	identityService portssvc.IdentitySvcFacade
	tokenService    portssvc.TokenSvcFacade
	posthogClient   *utils.PosthogClientWrapper
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(identity portssvc.IdentitySvcFacade, token portssvc.TokenSvcFacade, posthogClient *utils.PosthogClientWrapper) *AuthHandler {
	return &AuthHandler{identityService: identity, tokenService: token, posthogClient: posthogClient}
}

// Login resolves the credentials against every principal pool and issues a session.
//
//	POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind login request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	principal, err := h.identityService.ResolveLogin(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		respondServiceError(c, logger, err, "log in")
		return
	}

	session, err := h.tokenService.IssueSession(c.Request.Context(), *principal)
	if err != nil {
		respondServiceError(c, logger, err, "issue session")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, principal.ID, "login", map[string]any{
		"role":    string(principal.Role),
		"landing": string(principal.LandingModule()),
	})
	logger.Info("Principal logged in", slog.String("principal_id", principal.ID), slog.String("role", string(principal.Role)))
	c.JSON(http.StatusOK, dto.ToLoginResponse(session))
}

// Logout revokes the bearer token of the request.
//
//	POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	token, ok := middleware.GetSessionTokenFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	if err := h.tokenService.RevokeSession(c.Request.Context(), token); err != nil {
		respondServiceError(c, logger, err, "log out")
		return
	}
	c.Status(http.StatusNoContent)
}

// Me returns the principal carried by the session.
//
//	GET /api/v1/me
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.MeResponse{Principal: principal, LandingModule: principal.LandingModule()})
}
