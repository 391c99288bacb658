package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/usecase"
	"salon-booking-api/pkg/response"
	"salon-booking-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type StaffHandler struct {
	staffUsecase      usecase.StaffUsecase
	staffHoursUsecase usecase.StaffHoursUsecase
	validator         *validator.CustomValidator
}

func NewStaffHandler(staffUsecase usecase.StaffUsecase, staffHoursUsecase usecase.StaffHoursUsecase, validator *validator.CustomValidator) *StaffHandler {
	return &StaffHandler{
		staffUsecase:      staffUsecase,
		staffHoursUsecase: staffHoursUsecase,
		validator:         validator,
	}
}

// Create handles staff creation
// @Summary Create a staff member
// @Tags Staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateStaffRequest true "Create Staff Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/staff [post]
func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	staff, err := h.staffUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create staff")
		return
	}

	response.Success(w, http.StatusCreated, "Staff created successfully", staff)
}

// GetAll handles listing staff
// @Summary List staff members
// @Description List staff; the public site sees active ones only
// @Tags Staff
// @Produce json
// @Param include_inactive query bool false "Include inactive staff"
// @Success 200 {object} response.Response
// @Router /staff [get]
func (h *StaffHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	staff, err := h.staffUsecase.List(r.Context(), includeInactive)
	if err != nil {
		response.InternalServerError(w, "Failed to get staff")
		return
	}

	response.Success(w, http.StatusOK, "Staff retrieved successfully", staff)
}

// GetByID handles getting a staff member by ID
// @Summary Get staff member by ID
// @Tags Staff
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /staff/{id} [get]
func (h *StaffHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	staff, err := h.staffUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff not found")
		default:
			response.InternalServerError(w, "Failed to get staff")
		}
		return
	}

	response.Success(w, http.StatusOK, "Staff retrieved successfully", staff)
}

// Update handles staff update
// @Summary Update a staff member
// @Tags Staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Param request body dto.UpdateStaffRequest true "Update Staff Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/staff/{id} [put]
func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	var req dto.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	staff, err := h.staffUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff not found")
		default:
			response.InternalServerError(w, "Failed to update staff")
		}
		return
	}

	response.Success(w, http.StatusOK, "Staff updated successfully", staff)
}

// Delete handles staff deletion
// @Summary Delete a staff member
// @Tags Staff
// @Security BearerAuth
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/staff/{id} [delete]
func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	if err := h.staffUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff not found")
		default:
			response.InternalServerError(w, "Failed to delete staff")
		}
		return
	}

	response.Success(w, http.StatusOK, "Staff deleted successfully", nil)
}

// UpsertHours handles setting working hours for one weekday
// @Summary Set working hours
// @Description Set the open interval for one weekday (0=Sunday .. 6=Saturday)
// @Tags Staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Param weekday path int true "Weekday (0-6)"
// @Param request body dto.UpsertStaffHoursRequest true "Upsert Hours Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/staff/{id}/hours/{weekday} [put]
func (h *StaffHandler) UpsertHours(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}
	weekday, err := strconv.Atoi(vars["weekday"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid weekday", nil)
		return
	}

	var req dto.UpsertStaffHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hours, err := h.staffHoursUsecase.Upsert(r.Context(), id, weekday, &req)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff not found")
		case usecase.ErrInvalidWeekday, usecase.ErrInvalidHoursRange:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to set hours")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hours saved successfully", hours)
}

// GetHours handles listing a staff member's weekly hours
// @Summary List working hours
// @Tags Staff
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /staff/{id}/hours [get]
func (h *StaffHandler) GetHours(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	hours, err := h.staffHoursUsecase.ListByStaff(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff not found")
		default:
			response.InternalServerError(w, "Failed to get hours")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hours retrieved successfully", hours)
}

// DeleteHours handles clearing one weekday's hours
// @Summary Clear working hours for a weekday
// @Tags Staff
// @Security BearerAuth
// @Produce json
// @Param id path string true "Staff ID"
// @Param weekday path int true "Weekday (0-6)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/staff/{id}/hours/{weekday} [delete]
func (h *StaffHandler) DeleteHours(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}
	weekday, err := strconv.Atoi(vars["weekday"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid weekday", nil)
		return
	}

	if err := h.staffHoursUsecase.Delete(r.Context(), id, weekday); err != nil {
		switch err {
		case usecase.ErrHoursNotFound:
			response.NotFound(w, "No hours set for that weekday")
		case usecase.ErrInvalidWeekday:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to delete hours")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hours deleted successfully", nil)
}
