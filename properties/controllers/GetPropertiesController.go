package controllers

import (
	"encoding/json"

	"plot-sales-backend/config"
	"plot-sales-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetPropertiesController lists the portfolio with plans preloaded.
func (pc *PropertyController) GetPropertiesController(c *fiber.Ctx) error {
	cacheKey := utils.GenerateQueryHash("properties", map[string]string{"view": "list"})
	if payload, ok := pc.ViewCache.Get(c.Context(), cacheKey); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(payload)
	}

	properties, err := pc.PropertyRepo.GetAllProperties()
	if err != nil {
		config.Logger.Error("Failed to fetch properties", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch properties",
			"error":   err.Error(),
		})
	}

	response := fiber.Map{
		"success": true,
		"message": "Properties fetched successfully",
		"data": fiber.Map{
			"properties": properties,
			"total":      len(properties),
		},
	}

	if payload, err := json.Marshal(response); err == nil {
		if err := pc.ViewCache.Set(c.Context(), cacheKey, string(payload)); err != nil {
			config.Logger.Warn("Failed to cache properties view", zap.Error(err))
		}
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
