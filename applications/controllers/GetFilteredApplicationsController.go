package controllers

import (
	"encoding/json"

	"plot-sales-backend/applications/services"
	"plot-sales-backend/config"
	"plot-sales-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetFilteredApplicationsController handles the fetching of filtered applications.
// Search term and status filter default to the current session state so the
// rendered list matches what the navigation model says the admin is looking at.
func (ac *ApplicationController) GetFilteredApplicationsController(c *fiber.Ctx) error {
	state := ac.SessionManager.Snapshot()

	searchTerm := c.Query("search", state.ApplicationSearch)
	statusFilter := c.Query("status", state.ApplicationStatusFilter)
	if statusFilter == "" {
		statusFilter = services.StatusFilterAll
	}

	if err := services.IsValidStatusFilter(statusFilter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid status filter",
			"error":   err.Error(),
		})
	}

	// Serve from the view cache when an identical query was rendered recently
	cacheKey := ac.cacheKey(searchTerm, statusFilter)
	if payload, ok := ac.ViewCache.Get(c.Context(), cacheKey); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(payload)
	}

	applications, err := ac.ApplicationRepo.GetAllApplications()
	if err != nil {
		config.Logger.Error("Failed to fetch applications", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch applications",
			"error":   err.Error(),
		})
	}

	filtered := services.FilterApplications(applications, searchTerm, statusFilter)

	response := fiber.Map{
		"success": true,
		"message": "Applications fetched successfully",
		"data": fiber.Map{
			"applications":  filtered,
			"search":        searchTerm,
			"status_filter": statusFilter,
			"total":         len(filtered),
		},
	}
	if len(filtered) == 0 {
		response["data"].(fiber.Map)["empty_message"] = "No applications found matching your criteria."
	}

	if payload, err := json.Marshal(response); err == nil {
		if err := ac.ViewCache.Set(c.Context(), cacheKey, string(payload)); err != nil {
			config.Logger.Warn("Failed to cache applications view", zap.Error(err))
		}
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

func (ac *ApplicationController) cacheKey(searchTerm, statusFilter string) string {
	return utils.GenerateQueryHash("applications", map[string]string{
		"search": searchTerm,
		"status": statusFilter,
	})
}
