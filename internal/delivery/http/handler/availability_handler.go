package handler

import (
	"net/http"
	"strconv"

	"salon-booking-api/internal/usecase"
	"salon-booking-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
	}
}

// GetSlots handles the slot grid for the booking page
// @Summary Get available slots
// @Description All candidate slots for one staff member and day; blocked slots are flagged, not hidden
// @Tags Availability
// @Produce json
// @Param id path string true "Staff ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param duration_min query int true "Total appointment duration in minutes"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /staff/{id}/slots [get]
func (h *AvailabilityHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.Error(w, http.StatusBadRequest, "date is required", nil)
		return
	}

	durationMin, err := strconv.Atoi(r.URL.Query().Get("duration_min"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "duration_min is required", nil)
		return
	}

	slots, err := h.availabilityUsecase.GetSlots(r.Context(), staffID, date, durationMin)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff not found")
		case usecase.ErrInvalidDate, usecase.ErrInvalidDuration:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to get slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}

// GetNextOpenDay handles finding the next bookable date
// @Summary Get next open day
// @Description First date from the given one on which the staff member works
// @Tags Availability
// @Produce json
// @Param id path string true "Staff ID"
// @Param from query string false "Start date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /staff/{id}/next-open-day [get]
func (h *AvailabilityHandler) GetNextOpenDay(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	day, err := h.availabilityUsecase.NextOpenDay(r.Context(), staffID, r.URL.Query().Get("from"))
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff not found")
		case usecase.ErrStaffHasNoHours, usecase.ErrNoOpenDay:
			response.NotFound(w, err.Error())
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to find next open day")
		}
		return
	}

	response.Success(w, http.StatusOK, "Next open day retrieved successfully", day)
}
