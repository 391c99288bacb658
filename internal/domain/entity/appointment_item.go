package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentItem is one line of the customer's multi-service cart. Duration
// and price are copied from the service at booking time so later catalog
// edits do not rewrite history.
type AppointmentItem struct {
	ID            int             `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID uuid.UUID       `gorm:"type:uuid;not null;index" json:"appointment_id"`
	ServiceID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"service_id"`
	DurationMin   int             `gorm:"not null" json:"duration_min"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Service Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (AppointmentItem) TableName() string {
	return "appointment_items"
}
