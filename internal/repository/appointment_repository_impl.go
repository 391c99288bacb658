package repository

import (
	"errors"
	"time"

	"salon-booking-api/internal/domain/entity"
	domainRepo "salon-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) CreateItems(db *gorm.DB, items []entity.AppointmentItem) error {
	if len(items) == 0 {
		return nil
	}
	return db.Create(&items).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Staff").Preload("Items.Service").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindForStaffDay(db *gorm.DB, staffID uuid.UUID, dayStart, dayEnd time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("staff_id = ? AND starts_at >= ? AND starts_at < ?", staffID, dayStart, dayEnd).
		Order("starts_at").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// CountOverlapping uses the same half-open interval test as the slot engine:
// existing.starts_at < end AND start < existing.ends_at.
func (r *appointmentRepository) CountOverlapping(db *gorm.DB, staffID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("staff_id = ? AND status != ? AND starts_at < ? AND ? < ends_at",
			staffID, entity.AppointmentStatusCancelled, end, start).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) FindByDay(db *gorm.DB, dayStart, dayEnd time.Time, staffID *uuid.UUID) ([]entity.Appointment, error) {
	query := db.Preload("Staff").Preload("Items.Service").
		Where("starts_at >= ? AND starts_at < ?", dayStart, dayEnd)
	if staffID != nil {
		query = query.Where("staff_id = ?", *staffID)
	}

	var appointments []entity.Appointment
	if err := query.Order("starts_at").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status != ?", id, status).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) FindDueReminders(db *gorm.DB, windowStart, windowEnd time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Staff").
		Where("status = ? AND reminder_email_sent_at IS NULL AND starts_at >= ? AND starts_at < ?",
			entity.AppointmentStatusBooked, windowStart, windowEnd).
		Order("starts_at").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) MarkReminderSent(db *gorm.DB, id uuid.UUID, sentAt time.Time) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND reminder_email_sent_at IS NULL", id).
		Update("reminder_email_sent_at", sentAt)
	return result.RowsAffected, result.Error
}
