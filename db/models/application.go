package models

import (
	"time"

	"plot-sales-backend/utils"
)

type ApplicationStatus string

const (
	PendingApplication  ApplicationStatus = "pending"
	ApprovedApplication ApplicationStatus = "approved"
	RejectedApplication ApplicationStatus = "rejected"
)

// Application is a buyer's request to purchase a listed plot. Status is fixed
// data in current scope; no transition workflow is modeled.
type Application struct {
	ID           string `gorm:"primary_key" json:"id"` // e.g. APP001
	PropertyName string `gorm:"index;not null" json:"property_name"`

	ApplicantName string `gorm:"not null" json:"applicant_name"`
	Email         string `gorm:"not null" json:"email"`
	Phone         string `json:"phone"`

	Status ApplicationStatus `gorm:"type:varchar(20);index;not null" json:"status"`

	// Amount stays a numeric string as captured on the form; it is parsed into
	// a strict decimal at the aggregation boundary, never inside the model.
	Amount      string         `gorm:"not null" json:"amount"`
	PaymentPlan string         `json:"payment_plan"`
	AppliedDate utils.DateOnly `gorm:"type:date" json:"applied_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
