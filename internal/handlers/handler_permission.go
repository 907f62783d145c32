package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/agency_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/agency_ledger_app/internal/dto"
	"github.com/SscSPs/agency_ledger_app/internal/middleware"
	"github.com/SscSPs/agency_ledger_app/internal/utils"
	"github.com/gin-gonic/gin"
)

type permissionHandler struct {
	permissionService portssvc.PermissionSvcFacade
	routeGuard        portssvc.RouteGuardSvc
	auditService      portssvc.AuditSvcFacade
	posthogClient     *utils.PosthogClientWrapper
}

func registerPermissionRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, posthogClient *utils.PosthogClientWrapper) {
	h := &permissionHandler{
		permissionService: services.Permission,
		routeGuard:        services.RouteGuard,
		auditService:      services.Audit,
		posthogClient:     posthogClient,
	}

	rg.GET("/navigate/:module", h.navigate)
	rg.GET("/audit-logs", h.listAuditLogs)

	permissions := rg.Group("/permissions")
	{
		permissions.GET("", h.listRolePermissions)
		permissions.GET("/:role", h.getRolePermissions)
		permissions.PUT("/:role", h.updateRolePermissions)
	}
}

// navigate answers where the principal lands when asking for a module.
// A denial is still a 200: the decision carries the dashboard redirect.
func (h *permissionHandler) navigate(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	decision := h.routeGuard.Navigate(c.Request.Context(), principal, domain.ModuleTag(c.Param("module")))
	if decision.Redirected {
		middleware.PosthogEvent(c, h.posthogClient, principal.ID, "navigation_denied", map[string]any{
			"requested": string(decision.Requested),
			"role":      string(principal.Role),
		})
	}
	c.JSON(http.StatusOK, decision)
}

func (h *permissionHandler) listRolePermissions(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	roles, err := h.permissionService.ListRolePermissions(c.Request.Context(), principal)
	if err != nil {
		respondServiceError(c, logger, err, "list role permissions")
		return
	}
	c.JSON(http.StatusOK, dto.ListRolePermissionsResponse{Roles: roles})
}

func (h *permissionHandler) getRolePermissions(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	rp, err := h.permissionService.GetRolePermissions(c.Request.Context(), principal, domain.Role(c.Param("role")))
	if err != nil {
		respondServiceError(c, logger, err, "get role permissions")
		return
	}
	c.JSON(http.StatusOK, rp)
}

func (h *permissionHandler) updateRolePermissions(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.UpdateRolePermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind role permissions request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	role := domain.Role(c.Param("role"))
	rp, err := h.permissionService.UpdateRolePermissions(c.Request.Context(), principal, role, req)
	if err != nil {
		respondServiceError(c, logger, err, "update role permissions")
		return
	}
	logger.Info("Role permissions updated", slog.String("role", string(role)), slog.Int("modules", len(rp.CanView)))
	c.JSON(http.StatusOK, rp)
}

func (h *permissionHandler) listAuditLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var params dto.ListAuditLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	entries, err := h.auditService.ListAuditLogs(c.Request.Context(), principal, params.Limit)
	if err != nil {
		respondServiceError(c, logger, err, "list audit logs")
		return
	}
	c.JSON(http.StatusOK, dto.ListAuditLogsResponse{Entries: entries})
}
