package controllers

import (
	"plot-sales-backend/buyers/services"
	"plot-sales-backend/config"
	"plot-sales-backend/db/models"
	"plot-sales-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BuyerStatsController aggregates the buyers register: counts per payment
// status and the total collected so far.
func (bc *BuyerController) BuyerStatsController(c *fiber.Ctx) error {
	buyers, err := bc.BuyerRepo.GetAllBuyers()
	if err != nil {
		config.Logger.Error("Failed to fetch buyers for stats", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to compute buyer statistics",
			"error":   err.Error(),
		})
	}

	for i := range buyers {
		if err := services.VerifyBuyerLedger(&buyers[i]); err != nil {
			config.Logger.Error("Buyers register failed integrity checks", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Buyers register failed integrity checks",
				"error":   err.Error(),
			})
		}
	}

	counts := services.CountByPaymentStatus(buyers)
	totalPaid := services.TotalPaidAmount(buyers)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Buyer statistics computed successfully",
		"data": fiber.Map{
			"current":              counts[models.CurrentBuyer],
			"overdue":              counts[models.OverdueBuyer],
			"completed":            counts[models.CompletedBuyer],
			"total":                len(buyers),
			"total_paid_amount":    totalPaid,
			"total_paid_formatted": utils.FormatCurrency(totalPaid),
		},
	})
}
