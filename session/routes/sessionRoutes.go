package routes

import (
	"plot-sales-backend/middleware"
	"plot-sales-backend/session"
	controllers "plot-sales-backend/session/controllers"

	"github.com/gofiber/fiber/v2"
)

func SessionRouterInit(app *fiber.App, sessionManager *session.Manager) {
	authController := controllers.NewAuthController(sessionManager)
	navigationController := &controllers.NavigationController{
		SessionManager: sessionManager,
	}

	// Login and logout stay outside the session gate: logging out of a closed
	// session is a harmless reset
	app.Post("/api/v1/auth/login", authController.LoginController)
	app.Post("/api/v1/auth/logout", authController.LogoutController)

	api := app.Group("/api/v1/session", middleware.RequireSession(sessionManager))

	api.Get("/", navigationController.GetSessionController)
	api.Post("/tab", navigationController.SelectTabController)
	api.Post("/buyer", navigationController.SelectBuyerController)
	api.Post("/subtab", navigationController.SelectSubtabController)
	api.Post("/back", navigationController.GoBackController)
	api.Post("/search", navigationController.SetSearchTermController)
	api.Post("/status-filter", navigationController.SetStatusFilterController)
}
