package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Position int    `json:"position" validate:"gte=0"`
	IsActive *bool  `json:"is_active"`
}

type UpdateCategoryRequest struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	Position *int   `json:"position" validate:"omitempty,gte=0"`
	IsActive *bool  `json:"is_active"`
}

// Response DTOs

type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Total      int                `json:"total"`
}
