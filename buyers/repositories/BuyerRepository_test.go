package repositories

import (
	"testing"

	"plot-sales-backend/db/models"
	"plot-sales-backend/utils"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) BuyerRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Buyer{}, &models.Payment{}))

	buyers := []models.Buyer{
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
			Payments: []models.Payment{
				{Seq: 2, Date: utils.MustDate("2024-02-10"), Amount: decimal.NewFromInt(625000), Type: "Monthly Installment", Status: models.PaidInstallment},
				{Seq: 1, Date: utils.MustDate("2024-01-10"), Amount: decimal.NewFromInt(625000), Type: "Down Payment", Status: models.PaidInstallment},
			},
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
	}
	for i := range buyers {
		require.NoError(t, db.Create(&buyers[i]).Error)
	}

	return NewBuyerRepository(db)
}

func TestGetAllBuyers_NewestFirst(t *testing.T) {
	repo := newTestRepo(t)

	buyers, err := repo.GetAllBuyers()

	require.NoError(t, err)
	require.Len(t, buyers, 2)
	assert.Equal(t, "BUY002", buyers[0].ID)
	assert.Equal(t, "BUY001", buyers[1].ID)
}

func TestGetAllBuyers_PaymentsInSequenceOrder(t *testing.T) {
	repo := newTestRepo(t)

	buyers, err := repo.GetAllBuyers()

	require.NoError(t, err)
	payments := buyers[1].Payments
	require.Len(t, payments, 2)
	assert.Equal(t, 1, payments[0].Seq)
	assert.Equal(t, 2, payments[1].Seq)
}

func TestGetBuyerByID(t *testing.T) {
	repo := newTestRepo(t)

	buyer, err := repo.GetBuyerByID("BUY001")

	require.NoError(t, err)
	require.NotNil(t, buyer)
	assert.Equal(t, "Ahmed Khan", buyer.Name)
	assert.Len(t, buyer.Payments, 2)
}

func TestGetBuyerByID_MissReturnsNil(t *testing.T) {
	repo := newTestRepo(t)

	buyer, err := repo.GetBuyerByID("BUY999")

	require.NoError(t, err)
	assert.Nil(t, buyer)
}

func TestBuyerExists(t *testing.T) {
	repo := newTestRepo(t)

	exists, err := repo.BuyerExists("BUY001")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.BuyerExists("BUY999")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCountBuyers(t *testing.T) {
	repo := newTestRepo(t)

	count, err := repo.CountBuyers()

	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
