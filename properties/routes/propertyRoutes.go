package routes

import (
	dashboardRepositories "plot-sales-backend/dashboard/repositories"
	"plot-sales-backend/middleware"
	controllers "plot-sales-backend/properties/controllers"
	"plot-sales-backend/properties/repositories"
	"plot-sales-backend/properties/services"
	searchRepositories "plot-sales-backend/search/repositories"
	"plot-sales-backend/session"
	"plot-sales-backend/utils"

	"github.com/gofiber/fiber/v2"
)

func PropertyRouterInit(
	app *fiber.App,
	propertyRepo repositories.PropertyRepository,
	planBuilder *services.PlanBuilder,
	activityRepo dashboardRepositories.ActivityRepository,
	searchRepo *searchRepositories.SearchRepository,
	sessionManager *session.Manager,
	viewCache *utils.ViewCache,
) {
	propertyController := &controllers.PropertyController{
		PropertyRepo:   propertyRepo,
		PlanBuilder:    planBuilder,
		ActivityRepo:   activityRepo,
		SearchRepo:     searchRepo,
		SessionManager: sessionManager,
		ViewCache:      viewCache,
	}

	api := app.Group("/api/v1", middleware.RequireSession(sessionManager))

	api.Get("/properties", propertyController.GetPropertiesController)
	api.Post("/properties", propertyController.CreatePropertyController)

	api.Get("/properties/draft/plans", propertyController.GetPaymentPlansController)
	api.Post("/properties/draft/plans", propertyController.AddPaymentPlanController)
	api.Delete("/properties/draft/plans/:id", propertyController.RemovePaymentPlanController)
}
