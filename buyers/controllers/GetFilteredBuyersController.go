package controllers

import (
	"encoding/json"

	"plot-sales-backend/buyers/services"
	"plot-sales-backend/config"
	"plot-sales-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetFilteredBuyersController handles the fetching of the filtered buyers
// register. The search term defaults to the current session state.
func (bc *BuyerController) GetFilteredBuyersController(c *fiber.Ctx) error {
	state := bc.SessionManager.Snapshot()
	searchTerm := c.Query("search", state.BuyerSearch)

	cacheKey := utils.GenerateQueryHash("buyers", map[string]string{"search": searchTerm})
	if payload, ok := bc.ViewCache.Get(c.Context(), cacheKey); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(payload)
	}

	buyers, err := bc.BuyerRepo.GetAllBuyers()
	if err != nil {
		config.Logger.Error("Failed to fetch buyers", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch buyers",
			"error":   err.Error(),
		})
	}

	filtered := services.FilterBuyers(buyers, searchTerm)

	response := fiber.Map{
		"success": true,
		"message": "Buyers fetched successfully",
		"data": fiber.Map{
			"buyers": filtered,
			"search": searchTerm,
			"total":  len(filtered),
		},
	}
	if len(filtered) == 0 {
		response["data"].(fiber.Map)["empty_message"] = "No buyers found matching your criteria."
	}

	if payload, err := json.Marshal(response); err == nil {
		if err := bc.ViewCache.Set(c.Context(), cacheKey, string(payload)); err != nil {
			config.Logger.Warn("Failed to cache buyers view", zap.Error(err))
		}
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
