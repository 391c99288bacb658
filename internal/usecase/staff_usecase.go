package usecase

import (
	"context"
	"errors"

	"salon-booking-api/internal/converter"
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/domain/entity"
	"salon-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrStaffNotFound = errors.New("staff member not found")
)

type StaffUsecase interface {
	Create(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.StaffResponse, error)
	List(ctx context.Context, includeInactive bool) (*dto.StaffListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type staffUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	staffRepo repository.StaffRepository
}

func NewStaffUsecase(db *gorm.DB, log *logrus.Logger, staffRepo repository.StaffRepository) StaffUsecase {
	return &staffUsecase{
		db:        db,
		log:       log,
		staffRepo: staffRepo,
	}
}

func (u *staffUsecase) Create(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	staff := &entity.Staff{
		FullName: req.FullName,
		IsActive: true,
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}

	if err := u.staffRepo.Create(u.db.WithContext(ctx), staff); err != nil {
		u.log.Warnf("Failed to create staff: %+v", err)
		return nil, err
	}

	return converter.StaffToResponse(staff), nil
}

func (u *staffUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.StaffResponse, error) {
	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find staff %s: %+v", id, err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	return converter.StaffToResponse(staff), nil
}

func (u *staffUsecase) List(ctx context.Context, includeInactive bool) (*dto.StaffListResponse, error) {
	var (
		staff []entity.Staff
		err   error
	)
	if includeInactive {
		staff, err = u.staffRepo.FindAll(u.db.WithContext(ctx))
	} else {
		staff, err = u.staffRepo.FindActive(u.db.WithContext(ctx))
	}
	if err != nil {
		u.log.Warnf("Failed to list staff: %+v", err)
		return nil, err
	}

	return converter.StaffToListResponse(staff), nil
}

func (u *staffUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find staff %s: %+v", id, err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	if req.FullName != "" {
		staff.FullName = req.FullName
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}

	if err := u.staffRepo.Update(u.db.WithContext(ctx), staff); err != nil {
		u.log.Warnf("Failed to update staff %s: %+v", id, err)
		return nil, err
	}

	return converter.StaffToResponse(staff), nil
}

func (u *staffUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.staffRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete staff %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrStaffNotFound
	}

	return nil
}
