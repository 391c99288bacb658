package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"salon-booking-api/config"
	"salon-booking-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// NotificationService renders and delivers customer-facing booking messages.
// Delivery is best effort: a failed email never fails the booking.
type NotificationService struct {
	log    *logrus.Logger
	mailer Mailer
	sms    SMSSender
	salon  config.SalonConfig
}

func NewNotificationService(log *logrus.Logger, mailer Mailer, sms SMSSender, salon config.SalonConfig) *NotificationService {
	return &NotificationService{
		log:    log,
		mailer: mailer,
		sms:    sms,
		salon:  salon,
	}
}

// SendBookingConfirmation emails the customer right after a successful
// booking. Errors are logged and swallowed.
func (s *NotificationService) SendBookingConfirmation(ctx context.Context, appointment *entity.Appointment, staffName string, serviceNames []string) {
	if appointment.CustomerEmail == "" {
		return
	}

	subject, body := buildConfirmationMessage(s.salon, appointment.StartsAt, staffName, serviceNames)
	if err := s.mailer.Send(appointment.CustomerEmail, subject, "", body); err != nil {
		s.log.Warnf("Failed to send confirmation email for appointment %s: %+v", appointment.ID, err)
	}
}

// SendReminder emails (and, when a phone is on file, texts) the customer
// shortly before their appointment. Returns the email error so the sweep can
// retry on the next run instead of stamping the appointment.
func (s *NotificationService) SendReminder(ctx context.Context, appointment *entity.Appointment, staffName string) error {
	subject, html, text := buildReminderMessage(s.salon, appointment.StartsAt, appointment.EndsAt, staffName)

	if err := s.mailer.Send(appointment.CustomerEmail, subject, html, text); err != nil {
		return err
	}

	if appointment.CustomerPhone != "" {
		if err := s.sms.Send(ctx, appointment.CustomerPhone, text); err != nil {
			// SMS is a bonus channel; the email already went out.
			s.log.Warnf("Failed to send reminder SMS for appointment %s via %s: %+v", appointment.ID, s.sms.ProviderID(), err)
		}
	}

	return nil
}

// whenLabel formats an instant the way it reads in a message,
// e.g. "Mon, Oct 13 at 15:30".
func whenLabel(t time.Time) string {
	return t.Format("Mon, Jan 2 at 15:04")
}

func buildConfirmationMessage(salon config.SalonConfig, startsAt time.Time, staffName string, serviceNames []string) (subject, body string) {
	when := whenLabel(startsAt)
	subject = fmt.Sprintf("%s – Your appointment on %s", salon.Name, when)

	lines := []string{
		"Hi,",
		"",
		fmt.Sprintf("This is your booking confirmation at %s.", salon.Name),
	}
	if len(serviceNames) > 0 {
		lines = append(lines, fmt.Sprintf("Service: %s", strings.Join(serviceNames, ", ")))
	}
	if staffName != "" {
		lines = append(lines, fmt.Sprintf("Staff: %s", staffName))
	}
	lines = append(lines,
		fmt.Sprintf("When: %s", when),
		"",
		fmt.Sprintf("Location: %s", salon.Address),
		fmt.Sprintf("Phone: %s", salon.Phone),
		"",
		"Need to reschedule? Just reply to this email.",
		"",
		"See you soon,",
		salon.Name,
	)

	return subject, strings.Join(lines, "\n")
}

func buildReminderMessage(salon config.SalonConfig, startsAt, endsAt time.Time, staffName string) (subject, html, text string) {
	if staffName == "" {
		staffName = "our specialist"
	}
	startStr := whenLabel(startsAt)
	endStr := endsAt.Format("15:04")

	subject = fmt.Sprintf("Reminder: your appointment at %s in 1 hour", salon.Name)

	html = fmt.Sprintf(`<div style="font-family:system-ui, -apple-system, Segoe UI, Roboto, sans-serif; line-height:1.5;">
  <h2 style="margin:0 0 8px 0;">See you soon!</h2>
  <p style="margin:0 0 12px 0;">This is a friendly reminder that your appointment is in <b>1 hour</b>.</p>
  <div style="padding:12px 14px;border:1px solid #eee;border-radius:12px;">
    <div><b>When:</b> %s – %s</div>
    <div><b>With:</b> %s</div>
    <div><b>Where:</b> %s, %s • %s</div>
  </div>
  <p style="font-size:12px;color:#666;margin-top:12px;">
    If you can't make it, please reply to this email or call us at %s.
  </p>
</div>`, startStr, endStr, staffName, salon.Name, salon.Address, salon.Phone, salon.Phone)

	text = fmt.Sprintf(`Reminder: your appointment at %s is in 1 hour.
When: %s – %s
With: %s
Where: %s, %s • %s`, salon.Name, startStr, endStr, staffName, salon.Name, salon.Address, salon.Phone)

	return subject, html, text
}
