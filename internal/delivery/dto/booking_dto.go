package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateBookingRequest struct {
	StaffID       uuid.UUID   `json:"staff_id" validate:"required"`
	ServiceIDs    []uuid.UUID `json:"service_ids" validate:"required,min=1,dive,required"`
	StartsAt      time.Time   `json:"starts_at" validate:"required"`
	CustomerName  string      `json:"customer_name" validate:"required,max=255"`
	CustomerPhone string      `json:"customer_phone" validate:"required,max=32"`
	CustomerEmail string      `json:"customer_email" validate:"required,email"`
	Remarks       string      `json:"remarks" validate:"omitempty,max=2000"`
}

// Response DTOs

type BookingItemResponse struct {
	ServiceID   uuid.UUID       `json:"service_id"`
	ServiceName string          `json:"service_name,omitempty"`
	DurationMin int             `json:"duration_min"`
	Price       decimal.Decimal `json:"price"`
}

type BookingResponse struct {
	ID            uuid.UUID             `json:"id"`
	StaffID       uuid.UUID             `json:"staff_id"`
	StaffName     string                `json:"staff_name,omitempty"`
	CustomerName  string                `json:"customer_name,omitempty"`
	CustomerPhone string                `json:"customer_phone,omitempty"`
	CustomerEmail string                `json:"customer_email,omitempty"`
	StartsAt      time.Time             `json:"starts_at"`
	EndsAt        time.Time             `json:"ends_at"`
	Status        string                `json:"status"`
	Remarks       string                `json:"remarks,omitempty"`
	Items         []BookingItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}
