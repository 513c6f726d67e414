package services

import (
	"testing"

	"plot-sales-backend/db/models"
	"plot-sales-backend/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBuyers() []models.Buyer {
	return []models.Buyer{
		{
			ID:                "BUY001",
			Name:              "Ahmed Khan",
			Email:             "ahmed.khan@example.com",
			PropertyPurchased: "Executive Heights Block A",
			JoinDate:          utils.MustDate("2024-01-10"),
			TotalAmount:       decimal.NewFromInt(2500000),
			PaidAmount:        decimal.NewFromInt(1250000),
			RemainingAmount:   decimal.NewFromInt(1250000),
			PaymentStatus:     models.CurrentBuyer,
		},
		{
			ID:                "BUY002",
			Name:              "Fatima Noor",
			Email:             "fatima.noor@example.com",
			PropertyPurchased: "Royal Residency Plot 45",
			JoinDate:          utils.MustDate("2024-02-01"),
			TotalAmount:       decimal.NewFromInt(1800000),
			PaidAmount:        decimal.NewFromInt(900000),
			RemainingAmount:   decimal.NewFromInt(900000),
			PaymentStatus:     models.OverdueBuyer,
		},
		{
			ID:                "BUY003",
			Name:              "Usman Tariq",
			Email:             "usman.tariq@example.com",
			PropertyPurchased: "Business Hub Office 501",
			JoinDate:          utils.MustDate("2023-11-20"),
			TotalAmount:       decimal.NewFromInt(4500000),
			PaidAmount:        decimal.NewFromInt(4500000),
			RemainingAmount:   decimal.Zero,
			PaymentStatus:     models.CompletedBuyer,
		},
	}
}

func TestCountByPaymentStatus(t *testing.T) {
	counts := CountByPaymentStatus(sampleBuyers())

	assert.Equal(t, 1, counts[models.CurrentBuyer])
	assert.Equal(t, 1, counts[models.OverdueBuyer])
	assert.Equal(t, 1, counts[models.CompletedBuyer])
}

func TestCountByPaymentStatus_EmptyRegister(t *testing.T) {
	counts := CountByPaymentStatus(nil)

	require.Len(t, counts, 3)
	assert.Equal(t, 0, counts[models.CurrentBuyer])
	assert.Equal(t, 0, counts[models.OverdueBuyer])
	assert.Equal(t, 0, counts[models.CompletedBuyer])
}

func TestTotalPaidAmount(t *testing.T) {
	total := TotalPaidAmount(sampleBuyers())
	assert.Equal(t, "6650000", total.String())
}

func TestTotalPaidAmount_EmptyRegisterIsZero(t *testing.T) {
	assert.True(t, TotalPaidAmount(nil).IsZero())
}

func TestPaymentProgress_Halfway(t *testing.T) {
	buyers := sampleBuyers()

	progress, err := PaymentProgress(&buyers[1])

	require.NoError(t, err)
	assert.Equal(t, 50, progress)
}

func TestPaymentProgress_Completed(t *testing.T) {
	buyers := sampleBuyers()

	progress, err := PaymentProgress(&buyers[2])

	require.NoError(t, err)
	assert.Equal(t, 100, progress)
}

func TestPaymentProgress_RoundsHalfUp(t *testing.T) {
	buyer := models.Buyer{
		ID:              "BUY100",
		TotalAmount:     decimal.NewFromInt(3000000),
		PaidAmount:      decimal.NewFromInt(1000000),
		RemainingAmount: decimal.NewFromInt(2000000),
	}

	progress, err := PaymentProgress(&buyer)

	require.NoError(t, err)
	// 33.33... rounds to 33
	assert.Equal(t, 33, progress)
}

func TestPaymentProgress_ZeroTotalIsDataError(t *testing.T) {
	buyer := models.Buyer{ID: "BUY100"}

	_, err := PaymentProgress(&buyer)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTotalAmount)
}

func TestPaymentProgress_UnbalancedLedgerSurfaces(t *testing.T) {
	buyer := models.Buyer{
		ID:              "BUY100",
		TotalAmount:     decimal.NewFromInt(1000),
		PaidAmount:      decimal.NewFromInt(900),
		RemainingAmount: decimal.NewFromInt(500),
	}

	_, err := PaymentProgress(&buyer)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLedgerMismatch)
}

func TestVerifyBuyerLedger(t *testing.T) {
	buyers := sampleBuyers()
	for i := range buyers {
		assert.NoError(t, VerifyBuyerLedger(&buyers[i]))
	}
}
