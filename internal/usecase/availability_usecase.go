package usecase

import (
	"context"
	"errors"
	"time"

	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/domain/repository"
	"salon-booking-api/pkg/schedule"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidDate     = errors.New("invalid date, use YYYY-MM-DD")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrNoOpenDay       = errors.New("no open day within the booking horizon")
	ErrStaffHasNoHours = errors.New("staff member has no working hours configured")
)

type AvailabilityUsecase interface {
	GetSlots(ctx context.Context, staffID uuid.UUID, date string, durationMin int) (*dto.SlotListResponse, error)
	NextOpenDay(ctx context.Context, staffID uuid.UUID, from string) (*dto.NextOpenDayResponse, error)
}

type availabilityUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	staffRepo       repository.StaffRepository
	staffHoursRepo  repository.StaffHoursRepository
	appointmentRepo repository.AppointmentRepository
	slotStep        time.Duration
	horizonDays     int

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	staffRepo repository.StaffRepository,
	staffHoursRepo repository.StaffHoursRepository,
	appointmentRepo repository.AppointmentRepository,
	slotStepMin int,
	horizonDays int,
) AvailabilityUsecase {
	step := time.Duration(slotStepMin) * time.Minute
	if step <= 0 {
		step = schedule.DefaultStep
	}
	if horizonDays <= 0 {
		horizonDays = schedule.DefaultHorizonDays
	}
	return &availabilityUsecase{
		db:              db,
		log:             log,
		staffRepo:       staffRepo,
		staffHoursRepo:  staffHoursRepo,
		appointmentRepo: appointmentRepo,
		slotStep:        step,
		horizonDays:     horizonDays,
		now:             time.Now,
	}
}

// GetSlots returns every candidate slot for the staff member on the given
// date, flagging the ones that overlap existing appointments or have already
// started.
//
// Flow:
// 1. Resolve staff and that weekday's working hours
// 2. Load the day's appointments (cancelled included; the engine skips them)
// 3. Run the slot engine
func (u *availabilityUsecase) GetSlots(ctx context.Context, staffID uuid.UUID, date string, durationMin int) (*dto.SlotListResponse, error) {
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}

	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}

	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to find staff %s: %+v", staffID, err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	hours, err := u.dayHours(ctx, staffID, int(day.Weekday()))
	if err != nil {
		return nil, err
	}

	var busy []schedule.BusyInterval
	if hours != nil {
		dayStart := day
		dayEnd := day.AddDate(0, 0, 1)
		appointments, err := u.appointmentRepo.FindForStaffDay(u.db.WithContext(ctx), staffID, dayStart, dayEnd)
		if err != nil {
			u.log.Warnf("Failed to load appointments for staff %s on %s: %+v", staffID, date, err)
			return nil, err
		}
		busy = make([]schedule.BusyInterval, 0, len(appointments))
		for _, a := range appointments {
			busy = append(busy, schedule.BusyInterval{
				Start:  a.StartsAt,
				End:    a.EndsAt,
				Status: schedule.BusyStatus(a.Status),
			})
		}
	}

	duration := time.Duration(durationMin) * time.Minute
	slots := schedule.ComputeSlots(day, hours, busy, duration, u.now(), u.slotStep)

	responses := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		responses = append(responses, dto.SlotResponse{
			StartsAt: s.Start,
			EndsAt:   s.End,
			Blocked:  s.Blocked,
		})
	}

	return &dto.SlotListResponse{
		Date:  date,
		Slots: responses,
		Total: len(responses),
	}, nil
}

// NextOpenDay returns the first date from the given one (or today when empty)
// on which the staff member works. Days already in the past never qualify.
func (u *availabilityUsecase) NextOpenDay(ctx context.Context, staffID uuid.UUID, from string) (*dto.NextOpenDayResponse, error) {
	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to find staff %s: %+v", staffID, err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	now := u.now()
	start := now
	if from != "" {
		start, err = time.ParseInLocation("2006-01-02", from, time.Local)
		if err != nil {
			return nil, ErrInvalidDate
		}
	}

	allHours, err := u.staffHoursRepo.FindByStaff(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to load hours for staff %s: %+v", staffID, err)
		return nil, err
	}
	if len(allHours) == 0 {
		return nil, ErrStaffHasNoHours
	}

	open := make(schedule.Weekdays, len(allHours))
	for _, h := range allHours {
		open[time.Weekday(h.Weekday)] = struct{}{}
	}

	day, ok := schedule.NextOpenDay(start, open, u.horizonDays, now)
	if !ok {
		return nil, ErrNoOpenDay
	}

	return &dto.NextOpenDayResponse{Date: day.Format("2006-01-02")}, nil
}

// dayHours maps the stored row for one weekday into engine hours; nil means
// closed that day.
func (u *availabilityUsecase) dayHours(ctx context.Context, staffID uuid.UUID, weekday int) (*schedule.DayHours, error) {
	row, err := u.staffHoursRepo.FindForWeekday(u.db.WithContext(ctx), staffID, weekday)
	if err != nil {
		u.log.Warnf("Failed to load hours for staff %s weekday %d: %+v", staffID, weekday, err)
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	start, err := schedule.ParseTimeOfDay(row.StartTime)
	if err != nil {
		u.log.Warnf("Malformed start time %q for staff %s: %+v", row.StartTime, staffID, err)
		return nil, err
	}
	end, err := schedule.ParseTimeOfDay(row.EndTime)
	if err != nil {
		u.log.Warnf("Malformed end time %q for staff %s: %+v", row.EndTime, staffID, err)
		return nil, err
	}

	return &schedule.DayHours{Start: start, End: end}, nil
}
