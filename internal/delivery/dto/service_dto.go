package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateServiceRequest struct {
	CategoryID  *uuid.UUID      `json:"category_id"`
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description" validate:"omitempty"`
	DurationMin int             `json:"duration_min" validate:"required,min=5,max=480"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	IsActive    *bool           `json:"is_active"`
}

type UpdateServiceRequest struct {
	CategoryID  *uuid.UUID       `json:"category_id"`
	Name        string           `json:"name" validate:"omitempty,max=255"`
	Description *string          `json:"description"`
	DurationMin *int             `json:"duration_min" validate:"omitempty,min=5,max=480"`
	Price       *decimal.Decimal `json:"price"`
	IsActive    *bool            `json:"is_active"`
}

// Response DTOs

type ServiceResponse struct {
	ID          uuid.UUID         `json:"id"`
	CategoryID  *uuid.UUID        `json:"category_id,omitempty"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	DurationMin int               `json:"duration_min"`
	Price       decimal.Decimal   `json:"price"`
	IsActive    bool              `json:"is_active"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}
