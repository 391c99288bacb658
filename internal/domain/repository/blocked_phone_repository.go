package repository

import (
	"salon-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type BlockedPhoneRepository interface {
	// Find returns nil when the phone has no record yet.
	Find(db *gorm.DB, phone string) (*entity.BlockedPhone, error)
	Save(db *gorm.DB, record *entity.BlockedPhone) error
}
