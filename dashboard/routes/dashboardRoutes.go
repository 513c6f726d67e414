package routes

import (
	applicationRepositories "plot-sales-backend/applications/repositories"
	buyerRepositories "plot-sales-backend/buyers/repositories"
	controllers "plot-sales-backend/dashboard/controllers"
	"plot-sales-backend/dashboard/repositories"
	"plot-sales-backend/middleware"
	propertyRepositories "plot-sales-backend/properties/repositories"
	propertyServices "plot-sales-backend/properties/services"
	"plot-sales-backend/session"
	"plot-sales-backend/utils"

	"github.com/gofiber/fiber/v2"
)

func DashboardRouterInit(
	app *fiber.App,
	propertyRepo propertyRepositories.PropertyRepository,
	applicationRepo applicationRepositories.ApplicationRepository,
	buyerRepo buyerRepositories.BuyerRepository,
	activityRepo repositories.ActivityRepository,
	planBuilder *propertyServices.PlanBuilder,
	sessionManager *session.Manager,
	viewCache *utils.ViewCache,
) {
	dashboardController := &controllers.DashboardController{
		PropertyRepo:    propertyRepo,
		ApplicationRepo: applicationRepo,
		BuyerRepo:       buyerRepo,
		ActivityRepo:    activityRepo,
		PlanBuilder:     planBuilder,
		SessionManager:  sessionManager,
		ViewCache:       viewCache,
	}

	// The current view stays reachable while logged out: it renders the login view
	app.Get("/api/v1/views/current", dashboardController.CurrentViewController)

	api := app.Group("/api/v1", middleware.RequireSession(sessionManager))
	api.Get("/dashboard/overview", dashboardController.OverviewController)
}
