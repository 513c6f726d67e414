package controllers

import (
	"plot-sales-backend/config"
	"plot-sales-backend/dashboard/services"
	"plot-sales-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const recentActivityLimit = 10

// OverviewController renders the overview tab: four stat cards plus the
// recent activity feed.
func (dc *DashboardController) OverviewController(c *fiber.Ctx) error {
	properties, err := dc.PropertyRepo.CountProperties()
	if err != nil {
		return dc.overviewError(c, "Failed to count properties", err)
	}
	applications, err := dc.ApplicationRepo.GetAllApplications()
	if err != nil {
		return dc.overviewError(c, "Failed to fetch applications", err)
	}
	buyers, err := dc.BuyerRepo.GetAllBuyers()
	if err != nil {
		return dc.overviewError(c, "Failed to fetch buyers", err)
	}
	activities, err := dc.ActivityRepo.GetRecentActivities(recentActivityLimit)
	if err != nil {
		return dc.overviewError(c, "Failed to fetch activity feed", err)
	}

	stats := services.ComputeOverview(int(properties), applications, buyers)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Overview computed successfully",
		"data": fiber.Map{
			"stats":             stats,
			"revenue_formatted": utils.FormatCurrency(stats.Revenue),
			"recent_activities": activities,
		},
	})
}

func (dc *DashboardController) overviewError(c *fiber.Ctx, message string, err error) error {
	config.Logger.Error(message, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}
