package controllers

import (
	"plot-sales-backend/applications/repositories"
	"plot-sales-backend/session"
	"plot-sales-backend/utils"
)

// ApplicationController handles the applications register views
type ApplicationController struct {
	ApplicationRepo repositories.ApplicationRepository
	SessionManager  *session.Manager
	ViewCache       *utils.ViewCache
}
