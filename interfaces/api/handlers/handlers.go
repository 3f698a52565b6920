package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"project-task-api/domain/apperrors"
	"project-task-api/domain/services"
	"project-task-api/pkg/utils"
)

// Services contains all the services needed for handlers
type Services struct {
	ProjectService services.ProjectService
	TaskService    services.TaskService
}

// Handlers contains all HTTP handlers
type Handlers struct {
	ProjectHandler *ProjectHandler
	TaskHandler    *TaskHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		ProjectHandler: NewProjectHandler(services.ProjectService),
		TaskHandler:    NewTaskHandler(services.TaskService),
	}
}

// serviceErrorResponse maps service errors onto the response taxonomy:
// validation failures → 422 with a field map, missing entities → 404,
// anything else → 500.
func serviceErrorResponse(c *fiber.Ctx, err error) error {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return utils.ValidationErrorResponse(c, validationErr.Fields)
	}
	if errors.Is(err, apperrors.ErrProjectNotFound) {
		return utils.NotFoundResponse(c, "Project not found")
	}
	if errors.Is(err, apperrors.ErrTaskNotFound) {
		return utils.NotFoundResponse(c, "Task not found")
	}
	return utils.InternalServerErrorResponse(c)
}
