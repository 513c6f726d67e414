package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RemovePaymentPlanController drops a plan from the draft's builder by id.
// Removing an id that is not in the list is reported as ignored.
func (pc *PropertyController) RemovePaymentPlanController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid payment plan id",
			"error":   err.Error(),
		})
	}

	removed := pc.PlanBuilder.RemovePlan(id)
	message := "Payment plan removed from draft"
	if !removed {
		message = "Payment plan removal ignored: id not in draft"
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": removed,
		"message": message,
		"data": fiber.Map{
			"plans": pc.PlanBuilder.Plans(),
		},
	})
}
