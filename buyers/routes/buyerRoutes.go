package routes

import (
	controllers "plot-sales-backend/buyers/controllers"
	"plot-sales-backend/buyers/repositories"
	"plot-sales-backend/middleware"
	"plot-sales-backend/session"
	"plot-sales-backend/utils"

	"github.com/gofiber/fiber/v2"
)

func BuyerRouterInit(
	app *fiber.App,
	buyerRepo repositories.BuyerRepository,
	sessionManager *session.Manager,
	viewCache *utils.ViewCache,
) {
	buyerController := &controllers.BuyerController{
		BuyerRepo:      buyerRepo,
		SessionManager: sessionManager,
		ViewCache:      viewCache,
	}

	api := app.Group("/api/v1", middleware.RequireSession(sessionManager))

	api.Get("/buyers/filtered", buyerController.GetFilteredBuyersController)
	api.Get("/buyers/stats", buyerController.BuyerStatsController)
	api.Get("/buyers/:id", buyerController.GetBuyerDetailController)
}
