package controllers

import (
	applicationRepositories "plot-sales-backend/applications/repositories"
	buyerRepositories "plot-sales-backend/buyers/repositories"
	"plot-sales-backend/dashboard/repositories"
	propertyRepositories "plot-sales-backend/properties/repositories"
	propertyServices "plot-sales-backend/properties/services"
	"plot-sales-backend/session"
	"plot-sales-backend/utils"
)

type DashboardController struct {
	PropertyRepo    propertyRepositories.PropertyRepository
	ApplicationRepo applicationRepositories.ApplicationRepository
	BuyerRepo       buyerRepositories.BuyerRepository
	ActivityRepo    repositories.ActivityRepository
	PlanBuilder     *propertyServices.PlanBuilder
	SessionManager  *session.Manager
	ViewCache       *utils.ViewCache
}
