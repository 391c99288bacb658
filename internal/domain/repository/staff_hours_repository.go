package repository

import (
	"salon-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffHoursRepository interface {
	// Upsert creates or replaces the row for (staff, weekday).
	Upsert(db *gorm.DB, hours *entity.StaffHours) error
	FindByStaff(db *gorm.DB, staffID uuid.UUID) ([]entity.StaffHours, error)
	// FindForWeekday returns nil when the staff member is closed that weekday.
	FindForWeekday(db *gorm.DB, staffID uuid.UUID, weekday int) (*entity.StaffHours, error)
	Delete(db *gorm.DB, staffID uuid.UUID, weekday int) (int64, error)
}
