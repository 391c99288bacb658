package entity

import (
	"time"

	"github.com/google/uuid"
)

// StaffHours is the open interval for one staff member on one weekday
// (0=Sunday .. 6=Saturday). At most one row per (staff, weekday). Bookings
// may start anywhere inside [StartTime, EndTime].
type StaffHours struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	StaffID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_staff_weekday" json:"staff_id"`
	Weekday   int       `gorm:"not null;uniqueIndex:idx_staff_weekday" json:"weekday"`
	StartTime string    `gorm:"type:time;not null" json:"start_time"`
	EndTime   string    `gorm:"type:time;not null" json:"end_time"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Staff Staff `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}

func (StaffHours) TableName() string {
	return "staff_hours"
}
