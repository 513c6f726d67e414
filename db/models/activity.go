package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity is a dashboard feed entry shown on the overview tab.
type Activity struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Message    string    `gorm:"not null" json:"message"`
	Detail     string    `json:"detail"`
	OccurredAt time.Time `gorm:"index" json:"occurred_at"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
