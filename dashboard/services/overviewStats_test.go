package services

import (
	"testing"

	"plot-sales-backend/db/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeOverview(t *testing.T) {
	applications := []models.Application{
		{ID: "APP001", Status: models.PendingApplication},
		{ID: "APP002", Status: models.PendingApplication},
		{ID: "APP003", Status: models.ApprovedApplication},
		{ID: "APP004", Status: models.RejectedApplication},
	}
	buyers := []models.Buyer{
		{ID: "BUY001", PaidAmount: decimal.NewFromInt(1250000)},
		{ID: "BUY002", PaidAmount: decimal.NewFromInt(900000)},
	}

	stats := ComputeOverview(3, applications, buyers)

	assert.Equal(t, 3, stats.TotalProperties)
	assert.Equal(t, 2, stats.ActiveApplications)
	assert.Equal(t, 2, stats.TotalBuyers)
	assert.Equal(t, "2150000", stats.Revenue.String())
}

func TestComputeOverview_EmptyCollections(t *testing.T) {
	stats := ComputeOverview(0, nil, nil)

	assert.Equal(t, 0, stats.TotalProperties)
	assert.Equal(t, 0, stats.ActiveApplications)
	assert.Equal(t, 0, stats.TotalBuyers)
	assert.True(t, stats.Revenue.IsZero())
}
