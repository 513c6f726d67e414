package controllers

import (
	"plot-sales-backend/buyers/repositories"
	"plot-sales-backend/session"
	"plot-sales-backend/utils"
)

type BuyerController struct {
	BuyerRepo      repositories.BuyerRepository
	SessionManager *session.Manager
	ViewCache      *utils.ViewCache
}
