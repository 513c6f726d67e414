package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PlotUnit string

const (
	KanalPlotUnit PlotUnit = "kanal"
	MarlaPlotUnit PlotUnit = "marla"
)

// Property represents a plot listing advertised through the portal.
// Name is the join key the rest of the model references a listing by.
type Property struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Name string    `gorm:"uniqueIndex;not null" json:"name"`

	// Photo is an opaque reference; upload and encoding live in the collaborator layer
	Photo string `json:"photo"`

	SqFeet         int             `gorm:"not null" json:"sq_feet"`
	ProcessingFees decimal.Decimal `gorm:"type:decimal(15,2)" json:"processing_fees"`
	PlotSize       decimal.Decimal `gorm:"type:decimal(10,2)" json:"plot_size"`
	PlotUnit       PlotUnit        `gorm:"type:varchar(10)" json:"plot_unit"`
	TotalPrice     decimal.Decimal `gorm:"type:decimal(15,2)" json:"total_price"`
	Description    string          `gorm:"type:text" json:"description"`

	// Features keeps display order, so it is stored as an ordered JSON slice
	Features datatypes.JSONSlice[string] `json:"features"`

	PaymentPlans []PaymentPlan `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"payment_plans"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// PaymentPlan is an installment option offered on a listing. Field values stay
// strings end to end; presence is the only validation applied at submission.
type PaymentPlan struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;" json:"id"`
	PropertyID          *uuid.UUID `gorm:"type:uuid;index" json:"property_id,omitempty"`
	Name                string     `gorm:"not null" json:"name"`
	DownPayment         string     `gorm:"not null" json:"down_payment"`
	MonthlyInstallments string     `gorm:"not null" json:"monthly_installments"`
	Duration            string     `gorm:"not null" json:"duration"`
	CreatedAt           time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// PlanSnapshot is the value-copied form of a PaymentPlan embedded in sold-unit
// snapshots.
type PlanSnapshot struct {
	Name                string `json:"name"`
	DownPayment         string `json:"down_payment"`
	MonthlyInstallments string `json:"monthly_installments"`
	Duration            string `json:"duration"`
}

// PropertySnapshot is the denormalized copy of a listing taken at sale time.
// It is owned by the buyer record; later edits to the listing never reach it.
type PropertySnapshot struct {
	Name           string          `json:"name"`
	Photo          string          `json:"photo"`
	SqFeet         int             `json:"sq_feet"`
	ProcessingFees decimal.Decimal `json:"processing_fees"`
	PlotSize       decimal.Decimal `json:"plot_size"`
	PlotUnit       PlotUnit        `json:"plot_unit"`
	Description    string          `json:"description"`
	Features       []string        `json:"features"`
	PaymentPlans   []PlanSnapshot  `json:"payment_plans"`
}

// Snapshot value-copies the listing for embedding in a buyer record.
func (p *Property) Snapshot() PropertySnapshot {
	plans := make([]PlanSnapshot, 0, len(p.PaymentPlans))
	for _, plan := range p.PaymentPlans {
		plans = append(plans, PlanSnapshot{
			Name:                plan.Name,
			DownPayment:         plan.DownPayment,
			MonthlyInstallments: plan.MonthlyInstallments,
			Duration:            plan.Duration,
		})
	}
	features := make([]string, len(p.Features))
	copy(features, p.Features)

	return PropertySnapshot{
		Name:           p.Name,
		Photo:          p.Photo,
		SqFeet:         p.SqFeet,
		ProcessingFees: p.ProcessingFees,
		PlotSize:       p.PlotSize,
		PlotUnit:       p.PlotUnit,
		Description:    p.Description,
		Features:       features,
		PaymentPlans:   plans,
	}
}

// BeforeCreate hooks
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (pp *PaymentPlan) BeforeCreate(tx *gorm.DB) error {
	if pp.ID == uuid.Nil {
		pp.ID = uuid.New()
	}
	return nil
}
