package controllers

import (
	"time"

	"plot-sales-backend/config"
	"plot-sales-backend/db/models"
	"plot-sales-backend/properties/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type propertyDraftRequest struct {
	Name           string          `json:"name"`
	Photo          string          `json:"photo"`
	SqFeet         int             `json:"sq_feet"`
	ProcessingFees decimal.Decimal `json:"processing_fees"`
	PlotSize       decimal.Decimal `json:"plot_size"`
	PlotUnit       string          `json:"plot_unit"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	Description    string          `json:"description"`
	Features       []string        `json:"features"`
}

// CreatePropertyController submits the in-progress property draft. The plans
// accumulated in the builder are attached to the new listing and the builder
// is cleared for the next draft.
func (pc *PropertyController) CreatePropertyController(c *fiber.Ctx) error {
	var req propertyDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid property payload",
			"error":   err.Error(),
		})
	}

	property := models.Property{
		Name:           req.Name,
		Photo:          req.Photo,
		SqFeet:         req.SqFeet,
		ProcessingFees: req.ProcessingFees,
		PlotSize:       req.PlotSize,
		PlotUnit:       models.PlotUnit(req.PlotUnit),
		TotalPrice:     req.TotalPrice,
		Description:    req.Description,
		Features:       datatypes.NewJSONSlice(req.Features),
	}

	if err := services.ValidatePropertyDraft(&property); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Property draft rejected",
			"error":   err.Error(),
		})
	}

	existing, err := pc.PropertyRepo.GetPropertyByName(property.Name)
	if err != nil {
		config.Logger.Error("Failed to check listing name", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create property",
			"error":   err.Error(),
		})
	}
	if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "A property with this name already exists",
		})
	}

	property.PaymentPlans = pc.PlanBuilder.Drain()

	if err := pc.PropertyRepo.CreateProperty(&property); err != nil {
		config.Logger.Error("Failed to create property", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to create property",
			"error":   err.Error(),
		})
	}

	if pc.ActivityRepo != nil {
		activity := models.Activity{
			Message:    "New property listed",
			Detail:     property.Name,
			OccurredAt: time.Now(),
		}
		if err := pc.ActivityRepo.RecordActivity(&activity); err != nil {
			config.Logger.Warn("Failed to record listing activity", zap.Error(err))
		}
	}

	if pc.SearchRepo != nil {
		if err := pc.SearchRepo.IndexProperty(&property); err != nil {
			config.Logger.Warn("Failed to index new listing", zap.Error(err))
		}
	}

	pc.ViewCache.InvalidateCache(c.Context(), "properties")
	config.Logger.Info("Property created",
		zap.String("name", property.Name),
		zap.Int("payment_plans", len(property.PaymentPlans)),
	)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Property created successfully",
		"data":    property,
	})
}
