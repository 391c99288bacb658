package repository

import (
	"salon-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(db *gorm.DB, staff *entity.Staff) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Staff, error)
	FindAll(db *gorm.DB) ([]entity.Staff, error)
	FindActive(db *gorm.DB) ([]entity.Staff, error)
	Update(db *gorm.DB, staff *entity.Staff) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
