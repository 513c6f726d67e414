package models

import (
	"time"

	"plot-sales-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BuyerPaymentStatus string

const (
	CurrentBuyer   BuyerPaymentStatus = "current"
	OverdueBuyer   BuyerPaymentStatus = "overdue"
	CompletedBuyer BuyerPaymentStatus = "completed"
)

type InstallmentStatus string

const (
	PaidInstallment     InstallmentStatus = "paid"
	UpcomingInstallment InstallmentStatus = "upcoming"
)

// Buyer is a finalized purchaser of a plot. The ledger invariant
// paid + remaining == total must hold on every record at all times.
type Buyer struct {
	ID      string `gorm:"primary_key" json:"id"` // e.g. BUY001
	Name    string `gorm:"index;not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	CNIC    string `gorm:"column:cnic" json:"cnic"`

	JoinDate          utils.DateOnly `gorm:"type:date" json:"join_date"`
	PropertyPurchased string         `gorm:"index;not null" json:"property_purchased"`

	TotalAmount     decimal.Decimal `gorm:"type:decimal(15,2)" json:"total_amount"`
	PaidAmount      decimal.Decimal `gorm:"type:decimal(15,2)" json:"paid_amount"`
	RemainingAmount decimal.Decimal `gorm:"type:decimal(15,2)" json:"remaining_amount"`

	PaymentPlan   string             `json:"payment_plan"`
	PaymentStatus BuyerPaymentStatus `gorm:"type:varchar(20);index" json:"payment_status"`

	// Present iff the payment status is not completed
	NextPaymentDue *utils.DateOnly `gorm:"type:date" json:"next_payment_due,omitempty"`

	// Chronological payment history
	Payments []Payment `gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE" json:"payments"`

	// PropertyDetails is a value copy of the listing at sale time, stored as an
	// owned JSON document. It is deliberately not a reference to Property.
	PropertyDetails datatypes.JSONType[PropertySnapshot] `json:"property_details"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Payment is one entry in a buyer's installment history.
type Payment struct {
	ID      uuid.UUID         `gorm:"type:uuid;primary_key;" json:"id"`
	BuyerID string            `gorm:"index;not null" json:"buyer_id"`
	Seq     int               `gorm:"not null" json:"seq"` // order within the buyer's history
	Date    utils.DateOnly    `gorm:"type:date" json:"date"`
	Amount  decimal.Decimal   `gorm:"type:decimal(15,2)" json:"amount"`
	Type    string            `json:"type"` // e.g. "Down Payment", "Monthly Installment"
	Status  InstallmentStatus `gorm:"type:varchar(15)" json:"status"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
