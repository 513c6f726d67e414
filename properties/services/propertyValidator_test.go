package services

import (
	"testing"

	"plot-sales-backend/db/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidatePropertyDraft(t *testing.T) {
	property := models.Property{
		Name:       "Executive Heights Block B",
		TotalPrice: decimal.NewFromInt(2500000),
		PlotUnit:   models.MarlaPlotUnit,
	}
	assert.NoError(t, ValidatePropertyDraft(&property))
}

func TestValidatePropertyDraft_BlankName(t *testing.T) {
	property := models.Property{Name: "   "}
	assert.ErrorIs(t, ValidatePropertyDraft(&property), ErrMissingPropertyName)
}

func TestValidatePropertyDraft_NegativePrice(t *testing.T) {
	property := models.Property{
		Name:       "Executive Heights Block B",
		TotalPrice: decimal.NewFromInt(-1),
	}
	assert.ErrorIs(t, ValidatePropertyDraft(&property), ErrNegativeAmount)
}

func TestValidatePropertyDraft_UnknownPlotUnit(t *testing.T) {
	property := models.Property{
		Name:     "Executive Heights Block B",
		PlotUnit: "acre",
	}
	assert.ErrorIs(t, ValidatePropertyDraft(&property), ErrInvalidPlotUnit)
}

func TestValidatePropertyDraft_EmptyPlotUnitAllowed(t *testing.T) {
	property := models.Property{Name: "Executive Heights Block B"}
	assert.NoError(t, ValidatePropertyDraft(&property))
}
