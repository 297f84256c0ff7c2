package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/freightops/erpshipping/internal/apperrors"
	"github.com/freightops/erpshipping/internal/core/domain"
	portssvc "github.com/freightops/erpshipping/internal/core/ports/services"
	"github.com/freightops/erpshipping/internal/dto"
	"github.com/freightops/erpshipping/internal/middleware"
	"github.com/gin-gonic/gin"
)

// projectHandler handles HTTP requests related to projects (containers).
type projectHandler struct {
	projectService   portssvc.ProjectSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

// registerProjectRoutes registers routes related to projects, including the
// per-project profitability report.
func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := &projectHandler{
		projectService:   projectService,
		reportingService: reportingService,
	}

	projects := rg.Group("/projects")
	{
		projects.POST("", middleware.RequireRole(domain.UserRole.CanEdit), h.createProject)
		projects.GET("/:id", h.getProject)
		projects.GET("", h.listProjects)
		projects.GET("/:id/profit", h.getProjectProfit)
	}
}

// createProject godoc
// @Summary Create a new project
// @Description Creates a project tracking one shipping container
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Container number already tracked"
// @Failure 500 {object} map[string]string "Failed to create project"
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Container number already tracked", slog.String("container_number", req.ContainerNumber))
			c.JSON(http.StatusConflict, gin.H{"error": "Container number already tracked"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating project", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create project in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		}
		return
	}

	logger.Info("Project created successfully", slog.String("project_id", project.ProjectID))
	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// getProject godoc
// @Summary Get a project by ID
// @Description Retrieves details for a specific project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to retrieve project"
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	project, err := h.projectService.GetProjectByID(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Project not found", slog.String("project_id", projectID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			logger.Error("Failed to get project from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// listProjects godoc
// @Summary List projects
// @Description Retrieves projects, optionally restricted to active ones
// @Tags projects
// @Produce json
// @Param activeOnly query bool false "Only return active projects"
// @Success 200 {array} dto.ProjectResponse
// @Failure 500 {object} map[string]string "Failed to list projects"
// @Security BearerAuth
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	activeOnly := c.Query("activeOnly") == "true"

	projects, err := h.projectService.ListProjects(c.Request.Context(), activeOnly)
	if err != nil {
		logger.Error("Failed to list projects from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponses(projects))
}

// getProjectProfit godoc
// @Summary Get project profitability
// @Description Aggregates the project's ledger rows into revenue, expenses and net profit in the base currency
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectProfitResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to compute profitability"
// @Security BearerAuth
// @Router /projects/{id}/profit [get]
func (h *projectHandler) getProjectProfit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	profit, err := h.reportingService.GetProjectProfit(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Project not found for profit report", slog.String("project_id", projectID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			logger.Error("Failed to compute project profitability", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute profitability"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectProfitResponse(profit))
}
