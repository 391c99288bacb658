package service

import (
	"context"
	"time"

	"salon-booking-api/config"
	"salon-booking-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReminderService periodically sweeps for appointments starting soon and
// sends each customer a one-time reminder email.
type ReminderService struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	staffRepo       repository.StaffRepository
	notifier        *NotificationService
	cfg             config.ReminderConfig

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

func NewReminderService(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	staffRepo repository.StaffRepository,
	notifier *NotificationService,
	cfg config.ReminderConfig,
) *ReminderService {
	return &ReminderService{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		notifier:        notifier,
		cfg:             cfg,
		now:             time.Now,
	}
}

// Run sweeps on a fixed interval until the context is cancelled. Intended to
// be launched as a goroutine at startup.
func (s *ReminderService) Run(ctx context.Context) {
	interval := s.cfg.Interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	s.log.Infof("Reminder sweep running every %s", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Reminder sweep stopped")
			return
		case <-ticker.C:
			sent, err := s.SweepOnce(ctx)
			if err != nil {
				s.log.Warnf("Reminder sweep failed: %+v", err)
				continue
			}
			if sent > 0 {
				s.log.Infof("Reminder sweep sent %d reminders", sent)
			}
		}
	}
}

// SweepOnce processes the current reminder window and returns how many
// reminders went out.
//
// Flow:
// 1. Select booked appointments starting inside the window, reminder unsent
// 2. Skip ones without an email or booked too close to their start
// 3. Send, then stamp reminder_email_sent_at only if still unset
//
// The conditional stamp makes concurrent sweeps at-most-once per appointment.
func (s *ReminderService) SweepOnce(ctx context.Context) (int, error) {
	now := s.now()
	windowStart := now.Add(time.Duration(s.cfg.WindowStartMin) * time.Minute)
	windowEnd := now.Add(time.Duration(s.cfg.WindowEndMin) * time.Minute)

	due, err := s.appointmentRepo.FindDueReminders(s.db.WithContext(ctx), windowStart, windowEnd)
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range due {
		appointment := &due[i]

		if appointment.CustomerEmail == "" {
			continue
		}
		if !eligibleForReminder(appointment.CreatedAt, appointment.StartsAt, s.cfg.MinLeadTime) {
			continue
		}

		staffName := appointment.Staff.FullName
		if staffName == "" {
			staff, err := s.staffRepo.FindByID(s.db.WithContext(ctx), appointment.StaffID)
			if err == nil && staff != nil {
				staffName = staff.FullName
			}
		}

		if err := s.notifier.SendReminder(ctx, appointment, staffName); err != nil {
			// Leave unstamped so the next sweep retries while the
			// appointment is still inside the window.
			s.log.Warnf("Failed to send reminder for appointment %s: %+v", appointment.ID, err)
			continue
		}

		affected, err := s.appointmentRepo.MarkReminderSent(s.db.WithContext(ctx), appointment.ID, s.now())
		if err != nil {
			s.log.Warnf("Failed to stamp reminder for appointment %s: %+v", appointment.ID, err)
			continue
		}
		if affected == 0 {
			// Another sweep got there first.
			continue
		}
		sent++
	}

	return sent, nil
}

// eligibleForReminder skips bookings made less than minLead before their
// start; the customer just received a confirmation and a reminder on its
// heels would be noise.
func eligibleForReminder(createdAt, startsAt time.Time, minLead time.Duration) bool {
	return startsAt.Sub(createdAt) >= minLead
}
