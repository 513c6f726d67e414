package controllers

import (
	"plot-sales-backend/search/repositories"

	"github.com/gofiber/fiber/v2"
)

type SearchController struct {
	repo *repositories.SearchRepository
}

func NewSearchController(repo *repositories.SearchRepository) *SearchController {
	return &SearchController{repo: repo}
}

// GlobalSearchController matches a free-text query against properties,
// applications and buyers at once.
func (sc *SearchController) GlobalSearchController(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	if query == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Query parameter 'q' is required",
		})
	}

	results, err := sc.repo.SearchAll(query, 20)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Search failed",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Search completed successfully",
		"data": fiber.Map{
			"results": results,
			"total":   len(results),
		},
	})
}
