package repository

import (
	"salon-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(db *gorm.DB, category *entity.Category) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Category, error)
	FindAll(db *gorm.DB) ([]entity.Category, error)
	FindActive(db *gorm.DB) ([]entity.Category, error)
	Update(db *gorm.DB, category *entity.Category) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
