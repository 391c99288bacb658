package converter

import (
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.BookingResponse {
	response := &dto.BookingResponse{
		ID:            appointment.ID,
		StaffID:       appointment.StaffID,
		CustomerName:  appointment.CustomerName,
		CustomerPhone: appointment.CustomerPhone,
		CustomerEmail: appointment.CustomerEmail,
		StartsAt:      appointment.StartsAt,
		EndsAt:        appointment.EndsAt,
		Status:        string(appointment.Status),
		Remarks:       appointment.Remarks,
		CreatedAt:     appointment.CreatedAt,
	}

	if appointment.Staff.FullName != "" {
		response.StaffName = appointment.Staff.FullName
	}

	for i := range appointment.Items {
		item := &appointment.Items[i]
		itemResponse := dto.BookingItemResponse{
			ServiceID:   item.ServiceID,
			DurationMin: item.DurationMin,
			Price:       item.Price,
		}
		if item.Service.Name != "" {
			itemResponse.ServiceName = item.Service.Name
		}
		response.Items = append(response.Items, itemResponse)
	}

	return response
}

func AppointmentsToListResponse(appointments []entity.Appointment) *dto.AppointmentListResponse {
	responses := make([]dto.BookingResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}

	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}
}
