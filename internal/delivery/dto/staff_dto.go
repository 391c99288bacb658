package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateStaffRequest struct {
	FullName string `json:"full_name" validate:"required,max=255"`
	IsActive *bool  `json:"is_active"`
}

type UpdateStaffRequest struct {
	FullName string `json:"full_name" validate:"omitempty,max=255"`
	IsActive *bool  `json:"is_active"`
}

// UpsertStaffHoursRequest sets the open interval for one weekday.
type UpsertStaffHoursRequest struct {
	StartTime string `json:"start_time" validate:"required,timehhmm"`
	EndTime   string `json:"end_time" validate:"required,timehhmm"`
}

// Response DTOs

type StaffResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
	Total int             `json:"total"`
}

type StaffHoursResponse struct {
	StaffID   uuid.UUID `json:"staff_id"`
	Weekday   int       `json:"weekday"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

type StaffHoursListResponse struct {
	Hours []StaffHoursResponse `json:"hours"`
	Total int                  `json:"total"`
}
