package dto

// Request DTOs

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=booked done no_show cancelled"`
}

// Response DTOs

type AppointmentListResponse struct {
	Appointments []BookingResponse `json:"appointments"`
	Total        int               `json:"total"`
}
