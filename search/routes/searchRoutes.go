package routes

import (
	"plot-sales-backend/middleware"
	"plot-sales-backend/search/controllers"
	"plot-sales-backend/session"

	"github.com/gofiber/fiber/v2"
)

func InitSearchRoutes(app *fiber.App, controller *controllers.SearchController, sessionManager *session.Manager) {
	api := app.Group("/api/v1/search", middleware.RequireSession(sessionManager))

	api.Get("/", controller.GlobalSearchController)
}
