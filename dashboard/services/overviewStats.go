package services

import (
	applicationServices "plot-sales-backend/applications/services"
	buyerServices "plot-sales-backend/buyers/services"
	"plot-sales-backend/db/models"

	"github.com/shopspring/decimal"
)

// OverviewStats feeds the four dashboard cards. Revenue is the sum collected
// from buyers so far, not the contracted total.
type OverviewStats struct {
	TotalProperties    int             `json:"total_properties"`
	ActiveApplications int             `json:"active_applications"`
	TotalBuyers        int             `json:"total_buyers"`
	Revenue            decimal.Decimal `json:"revenue"`
}

// ComputeOverview aggregates over fully-formed collection snapshots. Active
// applications are the pending ones; approved and rejected are settled.
func ComputeOverview(propertyCount int, applications []models.Application, buyers []models.Buyer) OverviewStats {
	counts := applicationServices.CountByStatus(applications)

	return OverviewStats{
		TotalProperties:    propertyCount,
		ActiveApplications: counts[models.PendingApplication],
		TotalBuyers:        len(buyers),
		Revenue:            buyerServices.TotalPaidAmount(buyers),
	}
}
