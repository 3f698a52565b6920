package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"project-task-api/domain/dto"
	"project-task-api/domain/services"
	"project-task-api/pkg/logger"
	"project-task-api/pkg/utils"
)

type ProjectHandler struct {
	projectService services.ProjectService
}

func NewProjectHandler(projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.ProjectFilterRequest
	if err := c.QueryParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid query parameters", "error", err)
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fields := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fields)
		return utils.ValidationErrorResponse(c, fields)
	}

	projects, total, err := h.projectService.ListProjects(ctx, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list projects", "error", err)
		return serviceErrorResponse(c, err)
	}

	responses := make([]dto.ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = *dto.ProjectToProjectResponse(project, req.WithTasksCount, req.WithTasks)
	}

	return utils.PaginatedSuccessResponse(c, responses, total, req.PageOrDefault(), req.PerPageOrDefault())
}

func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	ctx := c.UserContext()

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		logger.WarnContext(ctx, "Invalid project ID", "project_id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	project, err := h.projectService.GetProject(ctx, projectID)
	if err != nil {
		logger.WarnContext(ctx, "Project lookup failed", "project_id", projectID, "error", err)
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.ProjectToProjectResponse(project, true, false))
}

func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fields := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fields)
		return utils.ValidationErrorResponse(c, fields)
	}

	project, err := h.projectService.CreateProject(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Project creation failed", "name", req.Name, "error", err)
		return serviceErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "Project created", "project_id", project.ID)

	return utils.CreatedResponse(c, dto.ProjectToProjectResponse(project, false, false))
}

func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	ctx := c.UserContext()

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		logger.WarnContext(ctx, "Invalid project ID", "project_id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	var req dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fields := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fields)
		return utils.ValidationErrorResponse(c, fields)
	}

	project, err := h.projectService.UpdateProject(ctx, projectID, &req)
	if err != nil {
		logger.WarnContext(ctx, "Project update failed", "project_id", projectID, "error", err)
		return serviceErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "Project updated", "project_id", projectID)

	return utils.SuccessResponse(c, dto.ProjectToProjectResponse(project, true, false))
}

func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	ctx := c.UserContext()

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		logger.WarnContext(ctx, "Invalid project ID", "project_id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	if err := h.projectService.DeleteProject(ctx, projectID); err != nil {
		logger.WarnContext(ctx, "Project deletion failed", "project_id", projectID, "error", err)
		return serviceErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "Project deleted", "project_id", projectID)

	return utils.MessageResponse(c, "Project deleted successfully")
}

func (h *ProjectHandler) GetProjectAudits(c *fiber.Ctx) error {
	ctx := c.UserContext()

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		logger.WarnContext(ctx, "Invalid project ID", "project_id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	entries, total, err := h.projectService.GetProjectAudits(ctx, projectID, page)
	if err != nil {
		logger.WarnContext(ctx, "Project audit lookup failed", "project_id", projectID, "error", err)
		return serviceErrorResponse(c, err)
	}

	responses := make([]dto.AuditLogResponse, len(entries))
	for i, entry := range entries {
		responses[i] = *dto.AuditLogToAuditLogResponse(entry)
	}

	return utils.PaginatedSuccessResponse(c, responses, total, page.PageOrDefault(), page.PerPageOrDefault())
}
