package usecase

import (
	"context"
	"errors"
	"time"

	"salon-booking-api/internal/converter"
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/domain/entity"
	"salon-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrStatusUnchanged     = errors.New("appointment already has that status")
)

type AppointmentUsecase interface {
	ListByDay(ctx context.Context, date string, staffID *uuid.UUID) (*dto.AppointmentListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.BookingResponse, error)
}

type appointmentUsecase struct {
	db                   *gorm.DB
	log                  *logrus.Logger
	appointmentRepo      repository.AppointmentRepository
	blockedPhoneRepo     repository.BlockedPhoneRepository
	noShowBlockThreshold int
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	blockedPhoneRepo repository.BlockedPhoneRepository,
	noShowBlockThreshold int,
) AppointmentUsecase {
	if noShowBlockThreshold <= 0 {
		noShowBlockThreshold = 2
	}
	return &appointmentUsecase{
		db:                   db,
		log:                  log,
		appointmentRepo:      appointmentRepo,
		blockedPhoneRepo:     blockedPhoneRepo,
		noShowBlockThreshold: noShowBlockThreshold,
	}
}

// ListByDay returns the appointment book for one calendar date, optionally
// narrowed to one staff member.
func (u *appointmentUsecase) ListByDay(ctx context.Context, date string, staffID *uuid.UUID) (*dto.AppointmentListResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}

	appointments, err := u.appointmentRepo.FindByDay(u.db.WithContext(ctx), day, day.AddDate(0, 0, 1), staffID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for %s: %+v", date, err)
		return nil, err
	}

	return converter.AppointmentsToListResponse(appointments), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.BookingResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateStatus transitions an appointment's lifecycle status. Marking an
// appointment no_show bumps the customer's no-show count in the same
// transaction; at the threshold the phone number is blocked from future
// bookings.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.BookingResponse, error) {
	status := entity.AppointmentStatus(req.Status)
	if !entity.ValidAppointmentStatus(status) {
		return nil, ErrInvalidStatus
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.Status == status {
		return nil, ErrStatusUnchanged
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.appointmentRepo.UpdateStatus(tx, id, status)
	if err != nil {
		u.log.Warnf("Failed to update status of appointment %s: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		// Raced with another update that already applied this status.
		return nil, ErrStatusUnchanged
	}

	if status == entity.AppointmentStatusNoShow && appointment.CustomerPhone != "" {
		if err := u.recordNoShow(tx, appointment.CustomerPhone); err != nil {
			u.log.Warnf("Failed to record no-show for %s: %+v", appointment.CustomerPhone, err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit status update: %+v", err)
		return nil, err
	}

	appointment.Status = status
	u.log.Infof("Appointment %s marked %s", id, status)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) recordNoShow(tx *gorm.DB, phone string) error {
	record, err := u.blockedPhoneRepo.Find(tx, phone)
	if err != nil {
		return err
	}
	if record == nil {
		record = &entity.BlockedPhone{Phone: phone}
	}

	record.NoShowCount++
	if record.NoShowCount >= u.noShowBlockThreshold && record.BlockedAt == nil {
		now := time.Now()
		record.BlockedAt = &now
		u.log.Infof("Phone %s blocked after %d no-shows", phone, record.NoShowCount)
	}

	return u.blockedPhoneRepo.Save(tx, record)
}
