package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups services on the public site (e.g. Hair, Nails, Skincare).
type Category struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Position int       `gorm:"not null;default:0" json:"position"`
	IsActive bool      `gorm:"not null;default:true;index" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Services []Service `gorm:"foreignKey:CategoryID" json:"services,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}
