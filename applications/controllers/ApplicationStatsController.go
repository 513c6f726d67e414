package controllers

import (
	"plot-sales-backend/applications/services"
	"plot-sales-backend/config"
	"plot-sales-backend/db/models"
	"plot-sales-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ApplicationStatsController returns the summary cards shown under the
// applications register: per-status counts and the total applied amount.
func (ac *ApplicationController) ApplicationStatsController(c *fiber.Ctx) error {
	applications, err := ac.ApplicationRepo.GetAllApplications()
	if err != nil {
		config.Logger.Error("Failed to fetch applications for stats", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch applications",
			"error":   err.Error(),
		})
	}

	counts := services.CountByStatus(applications)

	totalApplied, err := services.TotalAppliedAmount(applications)
	if err != nil {
		// A malformed amount corrupts every aggregate downstream; fail loudly
		config.Logger.Error("Data integrity violation in applications register", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Applications register failed integrity checks",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Application stats fetched successfully",
		"data": fiber.Map{
			"pending":                 counts[models.PendingApplication],
			"approved":                counts[models.ApprovedApplication],
			"rejected":                counts[models.RejectedApplication],
			"total":                   len(applications),
			"total_applied_amount":    totalApplied,
			"total_applied_formatted": utils.FormatCurrency(totalApplied),
		},
	})
}
