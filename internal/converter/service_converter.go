package converter

import (
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/domain/entity"
)

func ServiceToResponse(service *entity.Service) *dto.ServiceResponse {
	response := &dto.ServiceResponse{
		ID:          service.ID,
		CategoryID:  service.CategoryID,
		Name:        service.Name,
		Description: service.Description,
		DurationMin: service.DurationMin,
		Price:       service.Price,
		IsActive:    service.IsActive,
		CreatedAt:   service.CreatedAt,
		UpdatedAt:   service.UpdatedAt,
	}

	if service.Category != nil {
		response.Category = CategoryToResponse(service.Category)
	}

	return response
}

func ServicesToListResponse(services []entity.Service) *dto.ServiceListResponse {
	responses := make([]dto.ServiceResponse, 0, len(services))
	for i := range services {
		responses = append(responses, *ServiceToResponse(&services[i]))
	}

	return &dto.ServiceListResponse{
		Services: responses,
		Total:    len(responses),
	}
}
