package controllers

import (
	dashboardRepositories "plot-sales-backend/dashboard/repositories"
	"plot-sales-backend/properties/repositories"
	"plot-sales-backend/properties/services"
	searchRepositories "plot-sales-backend/search/repositories"
	"plot-sales-backend/session"
	"plot-sales-backend/utils"
)

type PropertyController struct {
	PropertyRepo   repositories.PropertyRepository
	PlanBuilder    *services.PlanBuilder
	ActivityRepo   dashboardRepositories.ActivityRepository
	SearchRepo     *searchRepositories.SearchRepository
	SessionManager *session.Manager
	ViewCache      *utils.ViewCache
}
