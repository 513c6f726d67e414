package db

import (
	"fmt"
	"log"
	"time"

	"plot-sales-backend/db/models"
	"plot-sales-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedPortalData loads the sample data set the portal serves in current scope.
// Safe to call twice; it no-ops when listings already exist.
func SeedPortalData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Property{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing listings: %w", err)
	}
	if count > 0 {
		log.Println("[SEED] Listings already present, skipping")
		return nil
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		properties := seedProperties()
		for i := range properties {
			if err := tx.Create(&properties[i]).Error; err != nil {
				return fmt.Errorf("failed to seed property %s: %w", properties[i].Name, err)
			}
		}
		for _, application := range seedApplications() {
			if err := tx.Create(&application).Error; err != nil {
				return fmt.Errorf("failed to seed application %s: %w", application.ID, err)
			}
		}
		for _, buyer := range seedBuyers(properties) {
			if err := tx.Create(&buyer).Error; err != nil {
				return fmt.Errorf("failed to seed buyer %s: %w", buyer.ID, err)
			}
		}
		for _, activity := range seedActivities() {
			if err := tx.Create(&activity).Error; err != nil {
				return fmt.Errorf("failed to seed activity: %w", err)
			}
		}
		return nil
	}); err != nil {
		return err
	}

	log.Println("[SEED] Portal sample data loaded")
	return nil
}

func seedProperties() []models.Property {
	return []models.Property{
		{
			Name:           "Executive Heights Block A",
			Photo:          "https://images.unsplash.com/photo-1613977257363-707ba9348227?w=500&h=300&fit=crop",
			SqFeet:         2200,
			ProcessingFees: decimal.NewFromInt(50000),
			PlotSize:       decimal.NewFromInt(5),
			PlotUnit:       models.MarlaPlotUnit,
			TotalPrice:     decimal.NewFromInt(2500000),
			Description:    "Premium residential plot in the heart of CBD Punjab with modern infrastructure, wide roads, and 24/7 security. Perfect for building your dream home with easy access to commercial areas.",
			Features:       datatypes.NewJSONSlice([]string{"24/7 Security", "Underground Utilities", "Wide Roads", "Green Spaces", "Mosque", "Shopping Center"}),
			PaymentPlans: []models.PaymentPlan{
				{Name: "Standard Plan", DownPayment: "20%", MonthlyInstallments: "83,333", Duration: "24 months"},
				{Name: "Extended Plan", DownPayment: "15%", MonthlyInstallments: "62,500", Duration: "36 months"},
			},
		},
		{
			Name:           "Royal Residency Plot 45",
			Photo:          "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=500&h=300&fit=crop",
			SqFeet:         1800,
			ProcessingFees: decimal.NewFromInt(35000),
			PlotSize:       decimal.NewFromInt(3),
			PlotUnit:       models.MarlaPlotUnit,
			TotalPrice:     decimal.NewFromInt(1800000),
			Description:    "Beautiful residential plot in Royal Residency with modern amenities, landscaped gardens, and excellent connectivity to main roads. Ideal for family homes.",
			Features:       datatypes.NewJSONSlice([]string{"Gated Community", "Landscaped Gardens", "Community Center", "Playground", "Backup Power", "Water Supply"}),
			PaymentPlans: []models.PaymentPlan{
				{Name: "Quick Plan", DownPayment: "30%", MonthlyInstallments: "90,000", Duration: "12 months"},
				{Name: "Standard Plan", DownPayment: "25%", MonthlyInstallments: "75,000", Duration: "18 months"},
			},
		},
		{
			Name:           "Business Hub Office 501",
			Photo:          "https://images.unsplash.com/photo-1497366216548-37526070297c?w=500&h=300&fit=crop",
			SqFeet:         3500,
			ProcessingFees: decimal.NewFromInt(75000),
			PlotSize:       decimal.NewFromInt(1),
			PlotUnit:       models.KanalPlotUnit,
			TotalPrice:     decimal.NewFromInt(4500000),
			Description:    "Premium commercial office space in the Business Hub with panoramic city views, modern facilities, and strategic location. Perfect for corporate headquarters and business operations.",
			Features:       datatypes.NewJSONSlice([]string{"Prime Location", "High-Speed Elevators", "Conference Rooms", "Parking Space", "HVAC System", "Fiber Internet"}),
			PaymentPlans: []models.PaymentPlan{
				{Name: "Cash Payment", DownPayment: "100%", MonthlyInstallments: "0", Duration: "0 months"},
				{Name: "Corporate Plan", DownPayment: "50%", MonthlyInstallments: "187,500", Duration: "12 months"},
			},
		},
	}
}

func seedApplications() []models.Application {
	return []models.Application{
		{ID: "APP001", PropertyName: "Executive Heights Block A", ApplicantName: "Ahmed Khan", Email: "ahmed.khan@email.com", Phone: "+92 300 1234567", AppliedDate: utils.MustDate("2024-01-15"), Status: models.PendingApplication, Amount: "2500000", PaymentPlan: "Standard Plan"},
		{ID: "APP002", PropertyName: "Royal Residency Plot 45", ApplicantName: "Fatima Ali", Email: "fatima.ali@email.com", Phone: "+92 301 9876543", AppliedDate: utils.MustDate("2024-01-14"), Status: models.ApprovedApplication, Amount: "1800000", PaymentPlan: "Installment Plan"},
		{ID: "APP003", PropertyName: "CBD Tower Suite 302", ApplicantName: "Muhammad Hassan", Email: "m.hassan@email.com", Phone: "+92 302 5555555", AppliedDate: utils.MustDate("2024-01-13"), Status: models.RejectedApplication, Amount: "3200000", PaymentPlan: "Cash Payment"},
		{ID: "APP004", PropertyName: "Green Valley Plot 12", ApplicantName: "Sara Sheikh", Email: "sara.sheikh@email.com", Phone: "+92 303 7777777", AppliedDate: utils.MustDate("2024-01-12"), Status: models.PendingApplication, Amount: "1500000", PaymentPlan: "Extended Plan"},
		{ID: "APP005", PropertyName: "Business Hub Office 501", ApplicantName: "Omar Malik", Email: "omar.malik@email.com", Phone: "+92 304 8888888", AppliedDate: utils.MustDate("2024-01-11"), Status: models.ApprovedApplication, Amount: "4500000", PaymentPlan: "Premium Plan"},
	}
}

func seedBuyers(properties []models.Property) []models.Buyer {
	snapshots := make(map[string]models.PropertySnapshot, len(properties))
	for i := range properties {
		snapshots[properties[i].Name] = properties[i].Snapshot()
	}

	return []models.Buyer{
		{
			ID:                "BUY001",
			Name:              "Ahmed Khan",
			Email:             "ahmed.khan@email.com",
			Phone:             "+92 300 1234567",
			Address:           "House 123, Block A, Gulberg, Lahore",
			CNIC:              "35201-1234567-8",
			JoinDate:          utils.MustDate("2024-01-15"),
			PropertyPurchased: "Executive Heights Block A",
			TotalAmount:       decimal.NewFromInt(2500000),
			PaidAmount:        decimal.NewFromInt(500000),
			RemainingAmount:   decimal.NewFromInt(2000000),
			PaymentPlan:       "Standard Plan (24 months)",
			PaymentStatus:     models.CurrentBuyer,
			NextPaymentDue:    utils.MustDatePtr("2024-02-15"),
			Payments: []models.Payment{
				{Seq: 1, Date: utils.MustDate("2024-01-15"), Amount: decimal.NewFromInt(500000), Type: "Down Payment", Status: models.PaidInstallment},
				{Seq: 2, Date: utils.MustDate("2024-02-15"), Amount: decimal.NewFromInt(83333), Type: "Monthly Installment", Status: models.UpcomingInstallment},
				{Seq: 3, Date: utils.MustDate("2024-03-15"), Amount: decimal.NewFromInt(83333), Type: "Monthly Installment", Status: models.UpcomingInstallment},
			},
			PropertyDetails: datatypes.NewJSONType(snapshots["Executive Heights Block A"]),
		},
		{
			ID:                "BUY002",
			Name:              "Fatima Ali",
			Email:             "fatima.ali@email.com",
			Phone:             "+92 301 9876543",
			Address:           "Apartment 45B, DHA Phase 5, Karachi",
			CNIC:              "42101-9876543-2",
			JoinDate:          utils.MustDate("2024-01-14"),
			PropertyPurchased: "Royal Residency Plot 45",
			TotalAmount:       decimal.NewFromInt(1800000),
			PaidAmount:        decimal.NewFromInt(900000),
			RemainingAmount:   decimal.NewFromInt(900000),
			PaymentPlan:       "Installment Plan (12 months)",
			PaymentStatus:     models.CurrentBuyer,
			NextPaymentDue:    utils.MustDatePtr("2024-02-14"),
			Payments: []models.Payment{
				{Seq: 1, Date: utils.MustDate("2024-01-14"), Amount: decimal.NewFromInt(540000), Type: "Down Payment", Status: models.PaidInstallment},
				{Seq: 2, Date: utils.MustDate("2024-01-29"), Amount: decimal.NewFromInt(90000), Type: "Monthly Installment", Status: models.PaidInstallment},
				{Seq: 3, Date: utils.MustDate("2024-02-14"), Amount: decimal.NewFromInt(90000), Type: "Monthly Installment", Status: models.UpcomingInstallment},
			},
			PropertyDetails: datatypes.NewJSONType(snapshots["Royal Residency Plot 45"]),
		},
		{
			ID:                "BUY003",
			Name:              "Omar Malik",
			Email:             "omar.malik@email.com",
			Phone:             "+92 304 8888888",
			Address:           "Villa 12, Bahria Town, Islamabad",
			CNIC:              "61101-8888888-4",
			JoinDate:          utils.MustDate("2024-01-11"),
			PropertyPurchased: "Business Hub Office 501",
			TotalAmount:       decimal.NewFromInt(4500000),
			PaidAmount:        decimal.NewFromInt(4500000),
			RemainingAmount:   decimal.Zero,
			PaymentPlan:       "Cash Payment",
			PaymentStatus:     models.CompletedBuyer,
			NextPaymentDue:    nil,
			Payments: []models.Payment{
				{Seq: 1, Date: utils.MustDate("2024-01-11"), Amount: decimal.NewFromInt(4500000), Type: "Full Payment", Status: models.PaidInstallment},
			},
			PropertyDetails: datatypes.NewJSONType(snapshots["Business Hub Office 501"]),
		},
	}
}

func seedActivities() []models.Activity {
	now := time.Now()
	return []models.Activity{
		{Message: "New property application received", Detail: "Block A, Plot 45", OccurredAt: now.Add(-2 * time.Hour)},
		{Message: "Payment received", Detail: "Ahmed Khan - PKR 2,500,000", OccurredAt: now.Add(-4 * time.Hour)},
		{Message: "Property listing updated", Detail: "Executive Heights", OccurredAt: now.Add(-6 * time.Hour)},
	}
}
