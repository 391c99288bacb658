package repository

import (
	"time"

	"salon-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	CreateItems(db *gorm.DB, items []entity.AppointmentItem) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)

	// FindForStaffDay returns all appointments whose start falls in
	// [dayStart, dayEnd), including cancelled ones; the slot engine decides
	// which statuses block.
	FindForStaffDay(db *gorm.DB, staffID uuid.UUID, dayStart, dayEnd time.Time) ([]entity.Appointment, error)

	// CountOverlapping counts non-cancelled appointments of the staff member
	// overlapping [start, end). The authoritative double-booking check.
	CountOverlapping(db *gorm.DB, staffID uuid.UUID, start, end time.Time) (int64, error)

	// FindByDay lists appointments for the admin panel; staffID narrows to
	// one staff member when non-nil.
	FindByDay(db *gorm.DB, dayStart, dayEnd time.Time, staffID *uuid.UUID) ([]entity.Appointment, error)

	// UpdateStatus transitions an appointment, refusing to touch rows already
	// in the target status. Returns affected rows.
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) (int64, error)

	// FindDueReminders returns booked appointments starting inside
	// [windowStart, windowEnd) with no reminder sent yet.
	FindDueReminders(db *gorm.DB, windowStart, windowEnd time.Time) ([]entity.Appointment, error)

	// MarkReminderSent stamps the reminder timestamp only if still unset,
	// making the sweep at-most-once per appointment. Returns affected rows.
	MarkReminderSent(db *gorm.DB, id uuid.UUID, sentAt time.Time) (int64, error)
}
