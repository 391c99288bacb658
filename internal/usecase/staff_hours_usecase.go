package usecase

import (
	"context"
	"errors"

	"salon-booking-api/internal/converter"
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/domain/entity"
	"salon-booking-api/internal/domain/repository"
	"salon-booking-api/pkg/schedule"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidWeekday    = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidHoursRange = errors.New("start time must be before end time")
	ErrHoursNotFound     = errors.New("no hours set for that weekday")
)

type StaffHoursUsecase interface {
	Upsert(ctx context.Context, staffID uuid.UUID, weekday int, req *dto.UpsertStaffHoursRequest) (*dto.StaffHoursResponse, error)
	ListByStaff(ctx context.Context, staffID uuid.UUID) (*dto.StaffHoursListResponse, error)
	Delete(ctx context.Context, staffID uuid.UUID, weekday int) error
}

type staffHoursUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	staffRepo      repository.StaffRepository
	staffHoursRepo repository.StaffHoursRepository
}

func NewStaffHoursUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	staffRepo repository.StaffRepository,
	staffHoursRepo repository.StaffHoursRepository,
) StaffHoursUsecase {
	return &staffHoursUsecase{
		db:             db,
		log:            log,
		staffRepo:      staffRepo,
		staffHoursRepo: staffHoursRepo,
	}
}

// Upsert sets the open interval for one weekday, replacing any existing row.
func (u *staffHoursUsecase) Upsert(ctx context.Context, staffID uuid.UUID, weekday int, req *dto.UpsertStaffHoursRequest) (*dto.StaffHoursResponse, error) {
	if weekday < 0 || weekday > 6 {
		return nil, ErrInvalidWeekday
	}

	start, err := schedule.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := schedule.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, err
	}
	if !start.Before(end) {
		return nil, ErrInvalidHoursRange
	}

	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to find staff %s: %+v", staffID, err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	hours := &entity.StaffHours{
		StaffID:   staffID,
		Weekday:   weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := u.staffHoursRepo.Upsert(u.db.WithContext(ctx), hours); err != nil {
		u.log.Warnf("Failed to upsert hours for staff %s weekday %d: %+v", staffID, weekday, err)
		return nil, err
	}

	return converter.StaffHoursToResponse(hours), nil
}

func (u *staffHoursUsecase) ListByStaff(ctx context.Context, staffID uuid.UUID) (*dto.StaffHoursListResponse, error) {
	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to find staff %s: %+v", staffID, err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	hours, err := u.staffHoursRepo.FindByStaff(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to list hours for staff %s: %+v", staffID, err)
		return nil, err
	}

	return converter.StaffHoursToListResponse(hours), nil
}

func (u *staffHoursUsecase) Delete(ctx context.Context, staffID uuid.UUID, weekday int) error {
	if weekday < 0 || weekday > 6 {
		return ErrInvalidWeekday
	}

	affected, err := u.staffHoursRepo.Delete(u.db.WithContext(ctx), staffID, weekday)
	if err != nil {
		u.log.Warnf("Failed to delete hours for staff %s weekday %d: %+v", staffID, weekday, err)
		return err
	}
	if affected == 0 {
		return ErrHoursNotFound
	}

	return nil
}
