package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/agency_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/agency_ledger_app/internal/dto"
	"github.com/SscSPs/agency_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := &projectHandler{projectService: projectService}

	projects := rg.Group("/projects")
	{
		projects.GET("", h.listProjects)
		projects.GET("/:projectID", h.getProject)
		projects.GET("/:projectID/summary", h.getProjectSummary)
		projects.DELETE("/:projectID", h.deleteProject)
	}
}

func (h *projectHandler) listProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	projects, err := h.projectService.ListProjects(c.Request.Context(), principal)
	if err != nil {
		respondServiceError(c, logger, err, "list projects")
		return
	}
	c.JSON(http.StatusOK, dto.ListProjectsResponse{Projects: projects})
}

func (h *projectHandler) getProject(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	project, err := h.projectService.GetProject(c.Request.Context(), principal, c.Param("projectID"))
	if err != nil {
		respondServiceError(c, logger, err, "get project")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *projectHandler) getProjectSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var params dto.ProjectSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	summary, err := h.projectService.GetProjectSummary(c.Request.Context(), principal, c.Param("projectID"), domain.Currency(params.Currency))
	if err != nil {
		respondServiceError(c, logger, err, "get project summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectSummaryResponse(summary))
}

func (h *projectHandler) deleteProject(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	projectID := c.Param("projectID")
	deletion, err := h.projectService.DeleteProject(c.Request.Context(), principal, projectID)
	if err != nil {
		respondServiceError(c, logger, err, "delete project")
		return
	}
	logger.Info("Project deleted",
		slog.String("project_id", projectID),
		slog.String("policy", string(deletion.Policy)),
	)
	c.JSON(http.StatusOK, deletion)
}
