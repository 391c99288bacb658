package handler

import (
	"encoding/json"
	"net/http"

	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/usecase"
	"salon-booking-api/pkg/response"
	"salon-booking-api/pkg/validator"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// Create handles public booking creation
// @Summary Create a booking
// @Description Book an appointment; no account needed
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidPhone, usecase.ErrInvalidEmail, usecase.ErrInvalidDuration:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrPhoneBlocked:
			response.Forbidden(w, "Your phone number is blocked due to repeated no-shows")
		case usecase.ErrStaffNotFound, usecase.ErrServiceNotFound:
			response.NotFound(w, err.Error())
		case usecase.ErrStaffInactive, usecase.ErrServiceInactive, usecase.ErrStaffClosed,
			usecase.ErrSlotOutsideHours, usecase.ErrSlotInPast:
			response.Error(w, http.StatusUnprocessableEntity, err.Error(), nil)
		case usecase.ErrSlotTaken:
			response.Conflict(w, "That time was just taken, please pick another slot")
		default:
			response.InternalServerError(w, "Failed to create booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

// CanBook handles the pre-booking phone check
// @Summary Check whether a phone number may book
// @Description Numbers with repeated no-shows are blocked
// @Tags Bookings
// @Produce json
// @Param phone query string true "Customer phone"
// @Success 200 {object} response.Response
// @Router /bookings/can-book [get]
func (h *BookingHandler) CanBook(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		response.Error(w, http.StatusBadRequest, "phone is required", nil)
		return
	}

	ok, err := h.bookingUsecase.CanBook(r.Context(), phone)
	if err != nil {
		response.InternalServerError(w, "Failed to check phone")
		return
	}

	response.Success(w, http.StatusOK, "Phone checked successfully", map[string]bool{"can_book": ok})
}
