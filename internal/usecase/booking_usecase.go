package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"salon-booking-api/internal/converter"
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/domain/entity"
	"salon-booking-api/internal/domain/repository"
	"salon-booking-api/internal/service"
	"salon-booking-api/pkg/schedule"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidPhone     = errors.New("please enter a valid Lebanese mobile number")
	ErrInvalidEmail     = errors.New("please enter a valid Gmail address")
	ErrPhoneBlocked     = errors.New("phone number is blocked due to repeated no-shows")
	ErrStaffInactive    = errors.New("staff member is not taking bookings")
	ErrServiceInactive  = errors.New("one of the selected services is not available")
	ErrStaffClosed      = errors.New("staff member does not work that day")
	ErrSlotOutsideHours = errors.New("requested time falls outside working hours")
	ErrSlotInPast       = errors.New("requested time is in the past")
	ErrSlotTaken        = errors.New("that time was just taken, please pick another slot")
)

var (
	gmailPattern      = regexp.MustCompile(`^[a-z0-9._%+\-]+@(gmail\.com|googlemail\.com)$`)
	lebanonIntlPhone  = regexp.MustCompile(`^(?:961)?(?:3\d|7\d|81)\d{6}$`)
	lebanonLocalPhone = regexp.MustCompile(`^0(?:3|7\d|81)\d{6}$`)
	nonDigits         = regexp.MustCompile(`\D`)
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	CanBook(ctx context.Context, phone string) (bool, error)
}

type bookingUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	staffRepo        repository.StaffRepository
	staffHoursRepo   repository.StaffHoursRepository
	serviceRepo      repository.ServiceRepository
	appointmentRepo  repository.AppointmentRepository
	blockedPhoneRepo repository.BlockedPhoneRepository
	notifier         *service.NotificationService

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	staffRepo repository.StaffRepository,
	staffHoursRepo repository.StaffHoursRepository,
	serviceRepo repository.ServiceRepository,
	appointmentRepo repository.AppointmentRepository,
	blockedPhoneRepo repository.BlockedPhoneRepository,
	notifier *service.NotificationService,
) BookingUsecase {
	return &bookingUsecase{
		db:               db,
		log:              log,
		staffRepo:        staffRepo,
		staffHoursRepo:   staffHoursRepo,
		serviceRepo:      serviceRepo,
		appointmentRepo:  appointmentRepo,
		blockedPhoneRepo: blockedPhoneRepo,
		notifier:         notifier,
		now:              time.Now,
	}
}

// CanBook reports whether the phone number may place bookings. Numbers pass
// until their no-show count reaches the blocking threshold.
func (u *bookingUsecase) CanBook(ctx context.Context, phone string) (bool, error) {
	record, err := u.blockedPhoneRepo.Find(u.db.WithContext(ctx), phone)
	if err != nil {
		u.log.Warnf("Failed to check blocked phone %s: %+v", phone, err)
		return false, err
	}
	if record != nil && record.IsBlocked() {
		return false, nil
	}
	return true, nil
}

// CreateBooking places a public booking.
//
// Flow:
// 1. Validate contact details and check the phone is not blocked
// 2. Resolve staff, services and that weekday's hours; reject slots outside
//    hours or in the past
// 3. In one transaction: recount overlapping appointments, insert the
//    appointment and its items
// 4. Best-effort confirmation email after commit
//
// The transactional recount is the authoritative double-booking guard; the
// slot list the customer saw may be stale by the time they submit.
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if !validLebanesePhone(req.CustomerPhone) {
		return nil, ErrInvalidPhone
	}
	if !validGmailAddress(req.CustomerEmail) {
		return nil, ErrInvalidEmail
	}

	ok, err := u.CanBook(ctx, req.CustomerPhone)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPhoneBlocked
	}

	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), req.StaffID)
	if err != nil {
		u.log.Warnf("Failed to find staff %s: %+v", req.StaffID, err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}
	if !staff.IsActive {
		return nil, ErrStaffInactive
	}

	services, err := u.serviceRepo.FindByIDs(u.db.WithContext(ctx), req.ServiceIDs)
	if err != nil {
		u.log.Warnf("Failed to load services: %+v", err)
		return nil, err
	}
	if len(services) != len(req.ServiceIDs) {
		return nil, ErrServiceNotFound
	}

	totalMin := 0
	serviceNames := make([]string, 0, len(services))
	for _, svc := range services {
		if !svc.IsActive {
			return nil, ErrServiceInactive
		}
		totalMin += svc.DurationMin
		serviceNames = append(serviceNames, svc.Name)
	}
	if totalMin <= 0 {
		return nil, ErrInvalidDuration
	}

	startsAt := req.StartsAt.In(time.Local)
	endsAt := startsAt.Add(time.Duration(totalMin) * time.Minute)

	if err := u.checkWithinHours(ctx, req, startsAt, endsAt); err != nil {
		return nil, err
	}
	if startsAt.Before(u.now()) {
		return nil, ErrSlotInPast
	}

	appointment := &entity.Appointment{
		StaffID:       req.StaffID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		StartsAt:      startsAt,
		EndsAt:        endsAt,
		Status:        entity.AppointmentStatusBooked,
		Remarks:       req.Remarks,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	overlapping, err := u.appointmentRepo.CountOverlapping(tx, req.StaffID, startsAt, endsAt)
	if err != nil {
		u.log.Warnf("Failed to count overlapping appointments: %+v", err)
		return nil, err
	}
	if overlapping > 0 {
		return nil, ErrSlotTaken
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	items := make([]entity.AppointmentItem, 0, len(services))
	for _, svc := range services {
		items = append(items, entity.AppointmentItem{
			AppointmentID: appointment.ID,
			ServiceID:     svc.ID,
			DurationMin:   svc.DurationMin,
			Price:         svc.Price,
		})
	}
	if err := u.appointmentRepo.CreateItems(tx, items); err != nil {
		u.log.Warnf("Failed to create appointment items: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit booking: %+v", err)
		return nil, err
	}

	u.notifier.SendBookingConfirmation(ctx, appointment, staff.FullName, serviceNames)

	u.log.Infof("Booking created: id=%s, staff=%s, starts=%s", appointment.ID, req.StaffID, startsAt.Format(time.RFC3339))

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(full), nil
}

// checkWithinHours verifies the requested interval fits inside the staff
// member's open hours for that weekday.
func (u *bookingUsecase) checkWithinHours(ctx context.Context, req *dto.CreateBookingRequest, startsAt, endsAt time.Time) error {
	row, err := u.staffHoursRepo.FindForWeekday(u.db.WithContext(ctx), req.StaffID, int(startsAt.Weekday()))
	if err != nil {
		u.log.Warnf("Failed to load hours for staff %s: %+v", req.StaffID, err)
		return err
	}
	if row == nil {
		return ErrStaffClosed
	}

	start, err := schedule.ParseTimeOfDay(row.StartTime)
	if err != nil {
		return err
	}
	end, err := schedule.ParseTimeOfDay(row.EndTime)
	if err != nil {
		return err
	}

	dayStart := start.On(startsAt)
	dayEnd := end.On(startsAt)
	if startsAt.Before(dayStart) || endsAt.After(dayEnd) {
		return ErrSlotOutsideHours
	}
	return nil
}

// validLebanesePhone accepts Lebanese mobile numbers, with or without the
// country prefix; separators and spaces are ignored.
func validLebanesePhone(v string) bool {
	d := nonDigits.ReplaceAllString(v, "")
	return lebanonIntlPhone.MatchString(d) || lebanonLocalPhone.MatchString(d)
}

// validGmailAddress accepts gmail.com and googlemail.com addresses; the
// confirmation flow depends on Gmail-deliverable addresses.
func validGmailAddress(v string) bool {
	return gmailPattern.MatchString(strings.ToLower(v))
}
