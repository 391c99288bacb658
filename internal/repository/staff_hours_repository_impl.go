package repository

import (
	"errors"

	"salon-booking-api/internal/domain/entity"
	domainRepo "salon-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type staffHoursRepository struct{}

func NewStaffHoursRepository() domainRepo.StaffHoursRepository {
	return &staffHoursRepository{}
}

func (r *staffHoursRepository) Upsert(db *gorm.DB, hours *entity.StaffHours) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "staff_id"}, {Name: "weekday"}},
		DoUpdates: clause.AssignmentColumns([]string{"start_time", "end_time", "updated_at"}),
	}).Create(hours).Error
}

func (r *staffHoursRepository) FindByStaff(db *gorm.DB, staffID uuid.UUID) ([]entity.StaffHours, error) {
	var hours []entity.StaffHours
	err := db.Where("staff_id = ?", staffID).
		Order("weekday").
		Find(&hours).Error
	if err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *staffHoursRepository) FindForWeekday(db *gorm.DB, staffID uuid.UUID, weekday int) (*entity.StaffHours, error) {
	var hours entity.StaffHours
	err := db.Where("staff_id = ? AND weekday = ?", staffID, weekday).First(&hours).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hours, nil
}

func (r *staffHoursRepository) Delete(db *gorm.DB, staffID uuid.UUID, weekday int) (int64, error) {
	result := db.Where("staff_id = ? AND weekday = ?", staffID, weekday).Delete(&entity.StaffHours{})
	return result.RowsAffected, result.Error
}
