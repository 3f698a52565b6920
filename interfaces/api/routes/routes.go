package routes

import (
	"github.com/gofiber/fiber/v2"

	"project-task-api/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	SetupHealthRoutes(app)

	// API version group
	api := app.Group("/api/v1")

	SetupProjectRoutes(api, h)
	SetupTaskRoutes(api, h)
}
