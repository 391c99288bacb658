package converter

import (
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/domain/entity"
)

func StaffToResponse(staff *entity.Staff) *dto.StaffResponse {
	return &dto.StaffResponse{
		ID:        staff.ID,
		FullName:  staff.FullName,
		IsActive:  staff.IsActive,
		CreatedAt: staff.CreatedAt,
		UpdatedAt: staff.UpdatedAt,
	}
}

func StaffToListResponse(staff []entity.Staff) *dto.StaffListResponse {
	responses := make([]dto.StaffResponse, 0, len(staff))
	for i := range staff {
		responses = append(responses, *StaffToResponse(&staff[i]))
	}

	return &dto.StaffListResponse{
		Staff: responses,
		Total: len(responses),
	}
}

func StaffHoursToResponse(hours *entity.StaffHours) *dto.StaffHoursResponse {
	return &dto.StaffHoursResponse{
		StaffID:   hours.StaffID,
		Weekday:   hours.Weekday,
		StartTime: hours.StartTime,
		EndTime:   hours.EndTime,
	}
}

func StaffHoursToListResponse(hours []entity.StaffHours) *dto.StaffHoursListResponse {
	responses := make([]dto.StaffHoursResponse, 0, len(hours))
	for i := range hours {
		responses = append(responses, *StaffHoursToResponse(&hours[i]))
	}

	return &dto.StaffHoursListResponse{
		Hours: responses,
		Total: len(responses),
	}
}
