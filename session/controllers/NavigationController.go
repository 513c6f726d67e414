package controllers

import (
	applicationServices "plot-sales-backend/applications/services"
	"plot-sales-backend/session"

	"github.com/gofiber/fiber/v2"
)

// NavigationController receives the Presentation Layer's input events and
// feeds them through the navigation state machine.
type NavigationController struct {
	SessionManager *session.Manager
}

// GetSessionController exposes the current navigation state.
func (nc *NavigationController) GetSessionController(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Session state fetched successfully",
		"data":    nc.SessionManager.Snapshot(),
	})
}

// SelectTabController switches the active dashboard tab.
func (nc *NavigationController) SelectTabController(c *fiber.Ctx) error {
	var req struct {
		Tab string `json:"tab"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid tab payload",
			"error":   err.Error(),
		})
	}

	switched := nc.SessionManager.SelectTab(session.Tab(req.Tab))
	message := "Tab switched"
	if !switched {
		message = "Tab switch ignored"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": switched,
		"message": message,
		"data":    nc.SessionManager.Snapshot(),
	})
}

// SelectBuyerController drills into a buyer's detail view. An unknown id
// falls back to the list view rather than erroring.
func (nc *NavigationController) SelectBuyerController(c *fiber.Ctx) error {
	var req struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid buyer selection payload",
			"error":   err.Error(),
		})
	}

	selected, err := nc.SessionManager.SelectBuyer(req.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to resolve buyer",
			"error":   err.Error(),
		})
	}

	message := "Buyer selected"
	if !selected {
		message = "Buyer not found, showing list view"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": selected,
		"message": message,
		"data":    nc.SessionManager.Snapshot(),
	})
}

// SelectSubtabController switches between profile and property detail views.
func (nc *NavigationController) SelectSubtabController(c *fiber.Ctx) error {
	var req struct {
		Subtab string `json:"subtab"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid subtab payload",
			"error":   err.Error(),
		})
	}

	switched := nc.SessionManager.SelectSubtab(session.Subtab(req.Subtab))
	message := "Subtab switched"
	if !switched {
		message = "Subtab switch ignored"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": switched,
		"message": message,
		"data":    nc.SessionManager.Snapshot(),
	})
}

// GoBackController returns from the buyer detail view to the buyers list.
func (nc *NavigationController) GoBackController(c *fiber.Ctx) error {
	nc.SessionManager.Back()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Returned to buyers list",
		"data":    nc.SessionManager.Snapshot(),
	})
}

// SetSearchTermController records a search term against the named tab.
func (nc *NavigationController) SetSearchTermController(c *fiber.Ctx) error {
	var req struct {
		Tab  string `json:"tab"`
		Term string `json:"term"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid search payload",
			"error":   err.Error(),
		})
	}

	switch session.Tab(req.Tab) {
	case session.ApplicationsTab:
		nc.SessionManager.SetApplicationSearch(req.Term)
	case session.BuyersTab:
		nc.SessionManager.SetBuyerSearch(req.Term)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Search is only available on the applications and buyers tabs",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Search term updated",
		"data":    nc.SessionManager.Snapshot(),
	})
}

// SetStatusFilterController records the applications status filter.
func (nc *NavigationController) SetStatusFilterController(c *fiber.Ctx) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid filter payload",
			"error":   err.Error(),
		})
	}

	if err := applicationServices.IsValidStatusFilter(req.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid status filter",
			"error":   err.Error(),
		})
	}

	nc.SessionManager.SetApplicationStatusFilter(req.Status)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Status filter updated",
		"data":    nc.SessionManager.Snapshot(),
	})
}
