package controllers

import (
	"plot-sales-backend/properties/services"

	"github.com/gofiber/fiber/v2"
)

// AddPaymentPlanController appends a plan to the draft's builder. An
// incomplete plan is reported as ignored, never as an error.
func (pc *PropertyController) AddPaymentPlanController(c *fiber.Ctx) error {
	var input services.PlanInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid payment plan payload",
			"error":   err.Error(),
		})
	}

	plan, added := pc.PlanBuilder.AddPlan(input)
	if !added {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "Payment plan ignored: all four fields are required",
			"data": fiber.Map{
				"plans": pc.PlanBuilder.Plans(),
			},
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Payment plan added to draft",
		"data": fiber.Map{
			"plan":  plan,
			"plans": pc.PlanBuilder.Plans(),
		},
	})
}
