package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"project-task-api/domain/dto"
	"project-task-api/domain/services"
	"project-task-api/pkg/logger"
	"project-task-api/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.TaskFilterRequest
	if err := c.QueryParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid query parameters", "error", err)
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fields := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fields)
		return utils.ValidationErrorResponse(c, fields)
	}

	tasks, total, err := h.taskService.ListTasks(ctx, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return serviceErrorResponse(c, err)
	}

	responses := make([]dto.TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *dto.TaskToTaskResponse(task, req.WithProject)
	}

	return utils.PaginatedSuccessResponse(c, responses, total, req.PageOrDefault(), req.PerPageOrDefault())
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		logger.WarnContext(ctx, "Invalid task ID", "task_id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.taskService.GetTask(ctx, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task lookup failed", "task_id", taskID, "error", err)
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task, true))
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fields := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fields)
		return utils.ValidationErrorResponse(c, fields)
	}

	task, err := h.taskService.CreateTask(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Task creation failed", "title", req.Title, "error", err)
		return serviceErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID)

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task, false))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		logger.WarnContext(ctx, "Invalid task ID", "task_id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fields := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fields)
		return utils.ValidationErrorResponse(c, fields)
	}

	task, err := h.taskService.UpdateTask(ctx, taskID, &req)
	if err != nil {
		logger.WarnContext(ctx, "Task update failed", "task_id", taskID, "error", err)
		return serviceErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID)

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task, true))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		logger.WarnContext(ctx, "Invalid task ID", "task_id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.taskService.DeleteTask(ctx, taskID); err != nil {
		logger.WarnContext(ctx, "Task deletion failed", "task_id", taskID, "error", err)
		return serviceErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID)

	return utils.MessageResponse(c, "Task deleted successfully")
}

func (h *TaskHandler) GetTaskAudits(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		logger.WarnContext(ctx, "Invalid task ID", "task_id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	entries, total, err := h.taskService.GetTaskAudits(ctx, taskID, page)
	if err != nil {
		logger.WarnContext(ctx, "Task audit lookup failed", "task_id", taskID, "error", err)
		return serviceErrorResponse(c, err)
	}

	responses := make([]dto.AuditLogResponse, len(entries))
	for i, entry := range entries {
		responses[i] = *dto.AuditLogToAuditLogResponse(entry)
	}

	return utils.PaginatedSuccessResponse(c, responses, total, page.PageOrDefault(), page.PerPageOrDefault())
}
