package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// GetPaymentPlansController returns the plans accumulated against the
// in-progress draft, in insertion order.
func (pc *PropertyController) GetPaymentPlansController(c *fiber.Ctx) error {
	plans := pc.PlanBuilder.Plans()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Draft payment plans fetched successfully",
		"data": fiber.Map{
			"plans": plans,
			"total": len(plans),
		},
	})
}
