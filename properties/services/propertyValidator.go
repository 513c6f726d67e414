package services

import (
	"errors"
	"strings"

	"plot-sales-backend/db/models"
)

var (
	ErrMissingPropertyName = errors.New("property name is required")
	ErrNegativeAmount      = errors.New("price fields must not be negative")
	ErrInvalidPlotUnit     = errors.New("plot unit must be kanal or marla")
)

// ValidatePropertyDraft checks a draft before it enters the portfolio.
// Listing names join the rest of the model, so a blank one is rejected here
// rather than surfacing later as an orphaned application or buyer.
func ValidatePropertyDraft(p *models.Property) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrMissingPropertyName
	}
	if p.TotalPrice.IsNegative() || p.ProcessingFees.IsNegative() || p.PlotSize.IsNegative() {
		return ErrNegativeAmount
	}
	if p.PlotUnit != "" && p.PlotUnit != models.KanalPlotUnit && p.PlotUnit != models.MarlaPlotUnit {
		return ErrInvalidPlotUnit
	}
	return nil
}
