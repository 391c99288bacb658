package converter

import (
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/domain/entity"
)

func CategoryToResponse(category *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Position:  category.Position,
		IsActive:  category.IsActive,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func CategoriesToListResponse(categories []entity.Category) *dto.CategoryListResponse {
	responses := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, *CategoryToResponse(&categories[i]))
	}

	return &dto.CategoryListResponse{
		Categories: responses,
		Total:      len(responses),
	}
}
