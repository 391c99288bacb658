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
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryNameTaken   = errors.New("category name already exists")
	ErrCategoryHasServices = errors.New("category still has services attached")
)

type CategoryUsecase interface {
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error)
	List(ctx context.Context, includeInactive bool) (*dto.CategoryListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	categoryRepo repository.CategoryRepository
}

func NewCategoryUsecase(db *gorm.DB, log *logrus.Logger, categoryRepo repository.CategoryRepository) CategoryUsecase {
	return &categoryUsecase{
		db:           db,
		log:          log,
		categoryRepo: categoryRepo,
	}
}

func (u *categoryUsecase) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := &entity.Category{
		Name:     req.Name,
		Position: req.Position,
		IsActive: true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := u.categoryRepo.Create(u.db.WithContext(ctx), category); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrCategoryNameTaken
		}
		u.log.Warnf("Failed to create category: %+v", err)
		return nil, err
	}

	return converter.CategoryToResponse(category), nil
}

func (u *categoryUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error) {
	category, err := u.categoryRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find category %s: %+v", id, err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	return converter.CategoryToResponse(category), nil
}

// List returns categories ordered by position. The public site only sees
// active ones; the admin panel passes includeInactive.
func (u *categoryUsecase) List(ctx context.Context, includeInactive bool) (*dto.CategoryListResponse, error) {
	var (
		categories []entity.Category
		err        error
	)
	if includeInactive {
		categories, err = u.categoryRepo.FindAll(u.db.WithContext(ctx))
	} else {
		categories, err = u.categoryRepo.FindActive(u.db.WithContext(ctx))
	}
	if err != nil {
		u.log.Warnf("Failed to list categories: %+v", err)
		return nil, err
	}

	return converter.CategoriesToListResponse(categories), nil
}

func (u *categoryUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := u.categoryRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find category %s: %+v", id, err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Position != nil {
		category.Position = *req.Position
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := u.categoryRepo.Update(u.db.WithContext(ctx), category); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrCategoryNameTaken
		}
		u.log.Warnf("Failed to update category %s: %+v", id, err)
		return nil, err
	}

	return converter.CategoryToResponse(category), nil
}

func (u *categoryUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.categoryRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		if isForeignKeyError(err, "category") {
			return ErrCategoryHasServices
		}
		u.log.Warnf("Failed to delete category %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
