package controllers

import (
	applicationServices "plot-sales-backend/applications/services"
	buyerServices "plot-sales-backend/buyers/services"
	"plot-sales-backend/config"
	"plot-sales-backend/dashboard/services"
	"plot-sales-backend/db/models"
	"plot-sales-backend/session"
	"plot-sales-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CurrentViewController renders whatever the navigation state says the admin
// is looking at. It is the one endpoint that stays reachable while logged
// out, where it renders the login view.
func (dc *DashboardController) CurrentViewController(c *fiber.Ctx) error {
	state := dc.SessionManager.Snapshot()

	if state.Status != session.LoggedIn {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "Current view composed successfully",
			"data": fiber.Map{
				"view":  "login",
				"state": state,
			},
		})
	}

	var (
		view    fiber.Map
		err     error
		message = "Current view composed successfully"
	)

	switch state.ActiveTab {
	case session.OverviewTab:
		view, err = dc.composeOverviewView()
	case session.PropertiesTab:
		view, err = dc.composePropertiesView()
	case session.ApplicationsTab:
		view, err = dc.composeApplicationsView(state)
	case session.BuyersTab:
		view, message, err = dc.composeBuyersView(state)
	default:
		view, err = dc.composeOverviewView()
	}

	if err != nil {
		config.Logger.Error("Failed to compose current view",
			zap.String("tab", string(state.ActiveTab)),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to compose current view",
			"error":   err.Error(),
		})
	}

	view["state"] = dc.SessionManager.Snapshot()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    view,
	})
}

func (dc *DashboardController) composeOverviewView() (fiber.Map, error) {
	properties, err := dc.PropertyRepo.CountProperties()
	if err != nil {
		return nil, err
	}
	applications, err := dc.ApplicationRepo.GetAllApplications()
	if err != nil {
		return nil, err
	}
	buyers, err := dc.BuyerRepo.GetAllBuyers()
	if err != nil {
		return nil, err
	}
	activities, err := dc.ActivityRepo.GetRecentActivities(recentActivityLimit)
	if err != nil {
		return nil, err
	}

	stats := services.ComputeOverview(int(properties), applications, buyers)
	return fiber.Map{
		"view":              "overview",
		"stats":             stats,
		"revenue_formatted": utils.FormatCurrency(stats.Revenue),
		"recent_activities": activities,
	}, nil
}

func (dc *DashboardController) composePropertiesView() (fiber.Map, error) {
	properties, err := dc.PropertyRepo.GetAllProperties()
	if err != nil {
		return nil, err
	}
	return fiber.Map{
		"view":        "properties",
		"properties":  properties,
		"total":       len(properties),
		"draft_plans": dc.PlanBuilder.Plans(),
	}, nil
}

func (dc *DashboardController) composeApplicationsView(state session.State) (fiber.Map, error) {
	applications, err := dc.ApplicationRepo.GetAllApplications()
	if err != nil {
		return nil, err
	}

	filtered := applicationServices.FilterApplications(applications, state.ApplicationSearch, state.ApplicationStatusFilter)
	counts := applicationServices.CountByStatus(applications)

	view := fiber.Map{
		"view":          "applications",
		"applications":  filtered,
		"total":         len(filtered),
		"search":        state.ApplicationSearch,
		"status_filter": state.ApplicationStatusFilter,
		"counts": fiber.Map{
			"pending":  counts[models.PendingApplication],
			"approved": counts[models.ApprovedApplication],
			"rejected": counts[models.RejectedApplication],
		},
	}
	if len(filtered) == 0 {
		view["empty_message"] = "No applications found matching your criteria."
	}
	return view, nil
}

// composeBuyersView renders either the buyers list or a selected buyer's
// detail. A selection that no longer resolves falls back to the list view.
func (dc *DashboardController) composeBuyersView(state session.State) (fiber.Map, string, error) {
	message := "Current view composed successfully"

	if state.SelectedBuyerID != "" {
		buyer, err := dc.BuyerRepo.GetBuyerByID(state.SelectedBuyerID)
		if err != nil {
			return nil, "", err
		}
		if buyer != nil {
			progress, err := buyerServices.PaymentProgress(buyer)
			if err != nil {
				return nil, "", err
			}
			return fiber.Map{
				"view":             "buyer_detail",
				"subtab":           state.BuyerSubtab,
				"buyer":            buyer,
				"payment_progress": progress,
				"paid_formatted":   utils.FormatCurrency(buyer.PaidAmount),
				"total_formatted":  utils.FormatCurrency(buyer.TotalAmount),
				"property":         buyer.PropertyDetails.Data(),
			}, message, nil
		}
		// Selection went stale between events, drop back to the list
		dc.SessionManager.Back()
		state = dc.SessionManager.Snapshot()
		message = "Buyer not found, showing list view"
	}

	buyers, err := dc.BuyerRepo.GetAllBuyers()
	if err != nil {
		return nil, "", err
	}
	filtered := buyerServices.FilterBuyers(buyers, state.BuyerSearch)

	view := fiber.Map{
		"view":   "buyers",
		"buyers": filtered,
		"search": state.BuyerSearch,
		"total":  len(filtered),
	}
	if len(filtered) == 0 {
		view["empty_message"] = "No buyers found matching your criteria."
	}
	return view, message, nil
}
