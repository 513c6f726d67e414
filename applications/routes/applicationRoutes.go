package routes

import (
	controllers "plot-sales-backend/applications/controllers"
	"plot-sales-backend/applications/repositories"
	"plot-sales-backend/middleware"
	"plot-sales-backend/session"
	"plot-sales-backend/utils"

	"github.com/gofiber/fiber/v2"
)

func ApplicationRouterInit(
	app *fiber.App,
	applicationRepo repositories.ApplicationRepository,
	sessionManager *session.Manager,
	viewCache *utils.ViewCache,
) {
	applicationController := &controllers.ApplicationController{
		ApplicationRepo: applicationRepo,
		SessionManager:  sessionManager,
		ViewCache:       viewCache,
	}

	api := app.Group("/api/v1", middleware.RequireSession(sessionManager))

	api.Get("/applications/filtered", applicationController.GetFilteredApplicationsController)
	api.Get("/applications/stats", applicationController.ApplicationStatsController)
	api.Get("/applications/export", applicationController.ExportApplicationsController)
}
