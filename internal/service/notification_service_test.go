package service

import (
	"testing"
	"time"

	"salon-booking-api/config"

	"github.com/stretchr/testify/assert"
)

var testSalon = config.SalonConfig{
	Name:    "Beauty Salon",
	Phone:   "+961 70 000 000",
	Address: "Hamra, Beirut",
}

func TestBuildConfirmationMessage(t *testing.T) {
	startsAt := time.Date(2026, 10, 13, 15, 30, 0, 0, time.Local)

	subject, body := buildConfirmationMessage(testSalon, startsAt, "Maya", []string{"Haircut", "Blow Dry"})

	assert.Equal(t, "Beauty Salon – Your appointment on Tue, Oct 13 at 15:30", subject)
	assert.Contains(t, body, "This is your booking confirmation at Beauty Salon.")
	assert.Contains(t, body, "Service: Haircut, Blow Dry")
	assert.Contains(t, body, "Staff: Maya")
	assert.Contains(t, body, "When: Tue, Oct 13 at 15:30")
	assert.Contains(t, body, "Location: Hamra, Beirut")
	assert.Contains(t, body, "Phone: +961 70 000 000")
}

func TestBuildConfirmationMessageOmitsEmptyFields(t *testing.T) {
	startsAt := time.Date(2026, 10, 13, 15, 30, 0, 0, time.Local)

	_, body := buildConfirmationMessage(testSalon, startsAt, "", nil)

	assert.NotContains(t, body, "Service:")
	assert.NotContains(t, body, "Staff:")
}

func TestBuildReminderMessage(t *testing.T) {
	startsAt := time.Date(2026, 10, 13, 15, 30, 0, 0, time.Local)
	endsAt := time.Date(2026, 10, 13, 16, 30, 0, 0, time.Local)

	subject, html, text := buildReminderMessage(testSalon, startsAt, endsAt, "Maya")

	assert.Equal(t, "Reminder: your appointment at Beauty Salon in 1 hour", subject)
	assert.Contains(t, html, "Tue, Oct 13 at 15:30")
	assert.Contains(t, html, "16:30")
	assert.Contains(t, html, "Maya")
	assert.Contains(t, text, "With: Maya")
	assert.Contains(t, text, "Where: Beauty Salon, Hamra, Beirut")
}

func TestBuildReminderMessageDefaultStaffName(t *testing.T) {
	startsAt := time.Date(2026, 10, 13, 15, 30, 0, 0, time.Local)
	endsAt := startsAt.Add(time.Hour)

	_, _, text := buildReminderMessage(testSalon, startsAt, endsAt, "")

	assert.Contains(t, text, "With: our specialist")
}

func TestEligibleForReminder(t *testing.T) {
	startsAt := time.Date(2026, 10, 13, 15, 0, 0, 0, time.Local)
	minLead := 2 * time.Hour

	// Booked well in advance
	assert.True(t, eligibleForReminder(startsAt.Add(-3*time.Hour), startsAt, minLead))

	// Booked exactly at the lead boundary
	assert.True(t, eligibleForReminder(startsAt.Add(-2*time.Hour), startsAt, minLead))

	// Last-minute booking
	assert.False(t, eligibleForReminder(startsAt.Add(-90*time.Minute), startsAt, minLead))
}

func TestBuildMailMessageMultipart(t *testing.T) {
	msg := buildMessage("from@salon.local", "to@gmail.com", "Subject", "<b>html</b>", "plain")

	assert.Contains(t, msg, "Content-Type: multipart/alternative")
	assert.Contains(t, msg, "<b>html</b>")
	assert.Contains(t, msg, "plain")
}

func TestBuildMailMessagePlainOnly(t *testing.T) {
	msg := buildMessage("from@salon.local", "to@gmail.com", "Subject", "", "plain")

	assert.Contains(t, msg, "Content-Type: text/plain")
	assert.NotContains(t, msg, "multipart")
}
