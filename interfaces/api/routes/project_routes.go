package routes

import (
	"github.com/gofiber/fiber/v2"

	"project-task-api/interfaces/api/handlers"
)

func SetupProjectRoutes(api fiber.Router, h *handlers.Handlers) {
	projects := api.Group("/projects")
	projects.Get("/", h.ProjectHandler.ListProjects)
	projects.Post("/", h.ProjectHandler.CreateProject)
	projects.Get("/:id", h.ProjectHandler.GetProject)
	projects.Put("/:id", h.ProjectHandler.UpdateProject)
	projects.Delete("/:id", h.ProjectHandler.DeleteProject)
	projects.Get("/:id/audits", h.ProjectHandler.GetProjectAudits)
}
