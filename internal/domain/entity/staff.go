package entity

import (
	"time"

	"github.com/google/uuid"
)

// Staff is a salon specialist customers can book with.
type Staff struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName string    `gorm:"type:varchar(255);not null" json:"full_name"`
	IsActive bool      `gorm:"not null;default:true;index" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Hours        []StaffHours  `gorm:"foreignKey:StaffID" json:"hours,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:StaffID" json:"appointments,omitempty"`
}

func (Staff) TableName() string {
	return "staff"
}
