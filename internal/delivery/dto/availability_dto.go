package dto

import "time"

// Response DTOs

// SlotResponse is one candidate slot on the booking page. Blocked slots are
// rendered greyed-out but still shown, so the shape keeps them.
type SlotResponse struct {
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	Blocked  bool      `json:"blocked"`
}

type SlotListResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}

type NextOpenDayResponse struct {
	Date string `json:"date"`
}
