// Package schedule computes bookable appointment slots for one staff member
// and one day, given the staff member's working hours and the appointments
// already on the books. All functions are pure; callers fetch the inputs and
// are expected to pass times in the same location.
package schedule

import (
	"fmt"
	"time"
)

const (
	// DefaultStep is the slot start granularity.
	DefaultStep = 30 * time.Minute

	// DefaultHorizonDays bounds how far ahead NextOpenDay scans.
	DefaultHorizonDays = 60
)

// BusyStatus is the lifecycle status of an existing appointment.
type BusyStatus string

const (
	StatusBooked    BusyStatus = "booked"
	StatusDone      BusyStatus = "done"
	StatusNoShow    BusyStatus = "no_show"
	StatusCancelled BusyStatus = "cancelled"
)

// TimeOfDay is a wall-clock time within a day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" (seconds are tolerated and ignored, since
// Postgres time columns come back as "HH:MM:SS").
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
			return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
		}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

// On anchors the time of day onto the calendar date of day, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// Before reports whether t is earlier in the day than o.
func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.Hour < o.Hour || (t.Hour == o.Hour && t.Minute < o.Minute)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// DayHours is the open interval during which a slot may start.
type DayHours struct {
	Start TimeOfDay
	End   TimeOfDay
}

// BusyInterval is an existing appointment's time range and status.
// Cancelled intervals free their time range and never block a slot.
type BusyInterval struct {
	Start  time.Time
	End    time.Time
	Status BusyStatus
}

// Slot is a candidate appointment of fixed duration. Blocked slots are shown
// but not selectable: they overlap an existing appointment or start in the
// past.
type Slot struct {
	Start   time.Time
	End     time.Time
	Blocked bool
}

// ComputeSlots returns the ordered candidate slots for day.
//
// Candidates start at hours.Start and advance by step while the start stays
// within working hours. Iteration stops at the first slot whose end would run
// past hours.End: starts only increase, so no later candidate can fit either.
// A slot ending exactly at hours.End is valid.
//
// A nil hours (staff closed that day) or a non-positive duration yields nil.
func ComputeSlots(day time.Time, hours *DayHours, busy []BusyInterval, duration time.Duration, now time.Time, step time.Duration) []Slot {
	if hours == nil || duration <= 0 {
		return nil
	}
	if step <= 0 {
		step = DefaultStep
	}

	dayStart := hours.Start.On(day)
	dayEnd := hours.End.On(day)

	var slots []Slot
	for t := dayStart; !t.After(dayEnd); t = t.Add(step) {
		end := t.Add(duration)
		if end.After(dayEnd) {
			break
		}
		slots = append(slots, Slot{
			Start:   t,
			End:     end,
			Blocked: overlapsAny(t, end, busy) || isPast(t, now),
		})
	}
	return slots
}

// overlapsAny reports whether [start, end) overlaps any non-cancelled busy
// interval. Half-open semantics: back-to-back appointments do not overlap.
func overlapsAny(start, end time.Time, busy []BusyInterval) bool {
	for _, b := range busy {
		if b.Status == StatusCancelled {
			continue
		}
		if b.Start.Before(end) && start.Before(b.End) {
			return true
		}
	}
	return false
}

// isPast blocks same-day slots that have already begun. Slots on future
// dates are never past-blocked, whatever the clock says.
func isPast(start, now time.Time) bool {
	return sameDate(start, now) && start.Before(now)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Weekdays is a set of open weekdays.
type Weekdays map[time.Weekday]struct{}

// NewWeekdays builds a set from the given weekdays.
func NewWeekdays(days ...time.Weekday) Weekdays {
	w := make(Weekdays, len(days))
	for _, d := range days {
		w[d] = struct{}{}
	}
	return w
}

// Has reports whether d is an open weekday.
func (w Weekdays) Has(d time.Weekday) bool {
	_, ok := w[d]
	return ok
}

// NextOpenDay scans from, from+1d, ... for up to horizonDays days and returns
// the first date whose weekday is open and whose calendar date is not before
// floor (typically today). Comparison is by calendar date, not instant, so a
// late-evening floor does not reject the same day. The second return value is
// false when no open day exists within the horizon.
func NextOpenDay(from time.Time, open Weekdays, horizonDays int, floor time.Time) (time.Time, bool) {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	fromDay := truncateToDate(from)
	floorDay := truncateToDate(floor)

	for i := 0; i < horizonDays; i++ {
		cand := fromDay.AddDate(0, 0, i)
		if open.Has(cand.Weekday()) && !cand.Before(floorDay) {
			return cand, true
		}
	}
	return time.Time{}, false
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
