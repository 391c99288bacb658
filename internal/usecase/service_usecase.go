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
	ErrServiceNotFound = errors.New("service not found")
)

type ServiceUsecase interface {
	Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error)
	List(ctx context.Context, includeInactive bool, categoryID *uuid.UUID) (*dto.ServiceListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type serviceUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	serviceRepo  repository.ServiceRepository
	categoryRepo repository.CategoryRepository
}

func NewServiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	categoryRepo repository.CategoryRepository,
) ServiceUsecase {
	return &serviceUsecase{
		db:           db,
		log:          log,
		serviceRepo:  serviceRepo,
		categoryRepo: categoryRepo,
	}
}

func (u *serviceUsecase) Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if req.CategoryID != nil {
		category, err := u.categoryRepo.FindByID(u.db.WithContext(ctx), *req.CategoryID)
		if err != nil {
			u.log.Warnf("Failed to find category %s: %+v", *req.CategoryID, err)
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
	}

	service := &entity.Service{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		IsActive:    true,
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := u.serviceRepo.Create(u.db.WithContext(ctx), service); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	return converter.ServiceToResponse(service), nil
}

func (u *serviceUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error) {
	service, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", id, err)
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	return converter.ServiceToResponse(service), nil
}

func (u *serviceUsecase) List(ctx context.Context, includeInactive bool, categoryID *uuid.UUID) (*dto.ServiceListResponse, error) {
	var (
		services []entity.Service
		err      error
	)
	if includeInactive {
		services, err = u.serviceRepo.FindAll(u.db.WithContext(ctx))
	} else {
		services, err = u.serviceRepo.FindActive(u.db.WithContext(ctx), categoryID)
	}
	if err != nil {
		u.log.Warnf("Failed to list services: %+v", err)
		return nil, err
	}

	return converter.ServicesToListResponse(services), nil
}

func (u *serviceUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", id, err)
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	if req.CategoryID != nil {
		category, err := u.categoryRepo.FindByID(u.db.WithContext(ctx), *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		service.CategoryID = req.CategoryID
	}
	if req.Name != "" {
		service.Name = req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := u.serviceRepo.Update(u.db.WithContext(ctx), service); err != nil {
		u.log.Warnf("Failed to update service %s: %+v", id, err)
		return nil, err
	}

	return converter.ServiceToResponse(service), nil
}

func (u *serviceUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.serviceRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete service %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrServiceNotFound
	}

	return nil
}
