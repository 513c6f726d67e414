package controllers

import (
	"plot-sales-backend/buyers/services"
	"plot-sales-backend/config"
	"plot-sales-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetBuyerDetailController renders one buyer's detail view: profile, payment
// history, progress and the property snapshot taken at sale time. A direct
// request for an unknown id is a 404; the list-view fallback applies only to
// navigation-driven selection.
func (bc *BuyerController) GetBuyerDetailController(c *fiber.Ctx) error {
	id := c.Params("id")

	buyer, err := bc.BuyerRepo.GetBuyerByID(id)
	if err != nil {
		config.Logger.Error("Failed to fetch buyer", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch buyer",
			"error":   err.Error(),
		})
	}
	if buyer == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Buyer not found",
		})
	}

	progress, err := services.PaymentProgress(buyer)
	if err != nil {
		config.Logger.Error("Buyer record failed integrity checks", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Buyer record failed integrity checks",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Buyer fetched successfully",
		"data": fiber.Map{
			"buyer":            buyer,
			"payment_progress": progress,
			"paid_formatted":   utils.FormatCurrency(buyer.PaidAmount),
			"total_formatted":  utils.FormatCurrency(buyer.TotalAmount),
			"property":         buyer.PropertyDetails.Data(),
		},
	})
}
