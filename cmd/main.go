package main

import (
	"context"

	config "plot-sales-backend/config"
	"plot-sales-backend/db"
	"plot-sales-backend/middleware"
	"plot-sales-backend/session"
	"plot-sales-backend/utils"

	// Repositories
	application_repositories "plot-sales-backend/applications/repositories"
	buyer_repositories "plot-sales-backend/buyers/repositories"
	dashboard_repositories "plot-sales-backend/dashboard/repositories"
	property_repositories "plot-sales-backend/properties/repositories"

	// Services
	property_services "plot-sales-backend/properties/services"

	// Routes
	application_routes "plot-sales-backend/applications/routes"
	buyer_routes "plot-sales-backend/buyers/routes"
	dashboard_routes "plot-sales-backend/dashboard/routes"
	property_routes "plot-sales-backend/properties/routes"
	session_routes "plot-sales-backend/session/routes"

	// Search
	searchControllers "plot-sales-backend/search/controllers"
	searchRepositories "plot-sales-backend/search/repositories"
	searchRoutes "plot-sales-backend/search/routes"
	searchServices "plot-sales-backend/search/services"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Initialize Zap logger
	config.InitLogger()

	// Load environment variables; a missing .env is fine, defaults cover it
	if err := godotenv.Load(".env"); err != nil {
		config.Logger.Warn("No .env file loaded, using environment defaults", zap.Error(err))
	}

	app := fiber.New()

	// Apply CORS middleware from middleware package
	middleware.InitCors(app)

	// Initialize database and configs
	database := config.ConfigureDatabase()
	port := config.GetEnvOrDefault("PORT", "8080")
	ctx := context.Background()

	// Seed the in-memory snapshot the portal serves
	if err := db.SeedPortalData(database); err != nil {
		config.Logger.Fatal("Failed to seed portal data", zap.Error(err))
	}

	// Redis-backed view cache; a nil client disables caching
	redisClient := config.InitRedisServer(ctx)
	viewCache := utils.NewViewCache(redisClient)

	// Repositories
	propertyRepo := property_repositories.NewPropertyRepository(database)
	applicationRepo := application_repositories.NewApplicationRepository(database)
	buyerRepo := buyer_repositories.NewBuyerRepository(database)
	activityRepo := dashboard_repositories.NewActivityRepository(database)

	// Navigation state machine; the plan builder rides along as tab-scoped draft state
	sessionManager := session.NewManager(buyerRepo)
	planBuilder := property_services.NewPlanBuilder()
	sessionManager.AttachDraft(planBuilder)

	// Search indexes are rebuilt from the snapshot on every boot
	indexingService := searchServices.NewIndexingService(config.Logger)
	searchRepo := searchRepositories.NewSearchRepository(indexingService)

	properties, err := propertyRepo.GetAllProperties()
	if err != nil {
		config.Logger.Fatal("Failed to load properties for indexing", zap.Error(err))
	}
	applications, err := applicationRepo.GetAllApplications()
	if err != nil {
		config.Logger.Fatal("Failed to load applications for indexing", zap.Error(err))
	}
	buyers, err := buyerRepo.GetAllBuyers()
	if err != nil {
		config.Logger.Fatal("Failed to load buyers for indexing", zap.Error(err))
	}
	if err := searchRepo.BuildIndexes(properties, applications, buyers); err != nil {
		config.Logger.Fatal("Failed to build search indexes", zap.Error(err))
	}

	// Routes
	session_routes.SessionRouterInit(app, sessionManager)
	dashboard_routes.DashboardRouterInit(app, propertyRepo, applicationRepo, buyerRepo, activityRepo, planBuilder, sessionManager, viewCache)
	property_routes.PropertyRouterInit(app, propertyRepo, planBuilder, activityRepo, searchRepo, sessionManager, viewCache)
	application_routes.ApplicationRouterInit(app, applicationRepo, sessionManager, viewCache)
	buyer_routes.BuyerRouterInit(app, buyerRepo, sessionManager, viewCache)

	searchController := searchControllers.NewSearchController(searchRepo)
	searchRoutes.InitSearchRoutes(app, searchController, sessionManager)

	// Background cache sweep
	sweeper := utils.RunScheduledCacheSweep(viewCache, []string{"properties", "applications", "buyers"})
	defer sweeper.Stop()

	// Start the application
	config.Logger.Info("Server starting", zap.String("port", port))
	config.Logger.Fatal("Server failed", zap.String("port", port), zap.Error(app.Listen(":"+port)))
}
