package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var beirut = time.FixedZone("EET", 2*60*60)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, beirut)
}

func at(base time.Time, hour, min int) time.Time {
	return time.Date(base.Year(), base.Month(), base.Day(), hour, min, 0, 0, base.Location())
}

func nineToFive() *DayHours {
	return &DayHours{Start: TimeOfDay{Hour: 9}, End: TimeOfDay{Hour: 17}}
}

func TestComputeSlots_FullOpenDay(t *testing.T) {
	d := day(2026, time.March, 2)
	now := at(d, 8, 0)

	slots := ComputeSlots(d, nineToFive(), nil, 60*time.Minute, now, 30*time.Minute)

	// Starts 09:00 .. 16:00 inclusive: 16:00+60m = 17:00 fits exactly,
	// 16:30 would end 17:30 and is cut off.
	require.Len(t, slots, 15)
	assert.Equal(t, at(d, 9, 0), slots[0].Start)
	assert.Equal(t, at(d, 16, 0), slots[len(slots)-1].Start)
	assert.Equal(t, at(d, 17, 0), slots[len(slots)-1].End)
	for _, s := range slots {
		assert.False(t, s.Blocked, "slot %s should be free", s.Start)
		assert.Equal(t, 60*time.Minute, s.End.Sub(s.Start))
	}
}

func TestComputeSlots_AscendingAndStepped(t *testing.T) {
	d := day(2026, time.March, 2)
	slots := ComputeSlots(d, nineToFive(), nil, 30*time.Minute, at(d, 0, 0), 30*time.Minute)

	require.NotEmpty(t, slots)
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, 30*time.Minute, slots[i].Start.Sub(slots[i-1].Start))
	}
}

func TestComputeSlots_OverlapBlocks(t *testing.T) {
	d := day(2026, time.March, 2)
	now := at(d, 8, 0)
	busy := []BusyInterval{{Start: at(d, 10, 0), End: at(d, 11, 0), Status: StatusBooked}}

	slots := ComputeSlots(d, nineToFive(), busy, 60*time.Minute, now, 30*time.Minute)

	byStart := map[string]Slot{}
	for _, s := range slots {
		byStart[s.Start.Format("15:04")] = s
	}

	// 09:00–10:00 touches the busy interval only at the boundary: free.
	assert.False(t, byStart["09:00"].Blocked)
	// 09:30–10:30, 10:00–11:00, 10:30–11:30 all overlap 10:00–11:00.
	assert.True(t, byStart["09:30"].Blocked)
	assert.True(t, byStart["10:00"].Blocked)
	assert.True(t, byStart["10:30"].Blocked)
	// 11:00–12:00 starts exactly when the booking ends: free.
	assert.False(t, byStart["11:00"].Blocked)
}

func TestComputeSlots_CancelledNeverBlocks(t *testing.T) {
	d := day(2026, time.March, 2)
	now := at(d, 8, 0)
	busy := []BusyInterval{{Start: at(d, 10, 0), End: at(d, 11, 0), Status: StatusCancelled}}

	slots := ComputeSlots(d, nineToFive(), busy, 60*time.Minute, now, 30*time.Minute)
	for _, s := range slots {
		assert.False(t, s.Blocked, "cancelled interval must not block %s", s.Start)
	}
}

func TestComputeSlots_DoneAndNoShowBlock(t *testing.T) {
	d := day(2026, time.March, 2)
	now := at(d, 8, 0)

	for _, status := range []BusyStatus{StatusBooked, StatusDone, StatusNoShow} {
		busy := []BusyInterval{{Start: at(d, 10, 0), End: at(d, 11, 0), Status: status}}
		slots := ComputeSlots(d, nineToFive(), busy, 60*time.Minute, now, 30*time.Minute)

		blocked := 0
		for _, s := range slots {
			if s.Blocked {
				blocked++
			}
		}
		assert.Equal(t, 3, blocked, "status %s", status)
	}
}

func TestComputeSlots_SameDayPastBlocking(t *testing.T) {
	d := day(2026, time.March, 2)
	now := at(d, 10, 15)

	slots := ComputeSlots(d, nineToFive(), nil, 60*time.Minute, now, 30*time.Minute)
	for _, s := range slots {
		if s.Start.Before(now) {
			assert.True(t, s.Blocked, "past slot %s must be blocked", s.Start)
		} else {
			assert.False(t, s.Blocked, "future slot %s must be free", s.Start)
		}
	}
}

func TestComputeSlots_FutureDayNeverPastBlocked(t *testing.T) {
	d := day(2026, time.March, 3)
	// Late the evening before; clock time is after every slot's wall time.
	now := time.Date(2026, time.March, 2, 23, 45, 0, 0, beirut)

	slots := ComputeSlots(d, nineToFive(), nil, 60*time.Minute, now, 30*time.Minute)
	require.NotEmpty(t, slots)
	for _, s := range slots {
		assert.False(t, s.Blocked)
	}
}

func TestComputeSlots_EmptyResults(t *testing.T) {
	d := day(2026, time.March, 2)
	now := at(d, 8, 0)

	assert.Nil(t, ComputeSlots(d, nil, nil, 60*time.Minute, now, 30*time.Minute), "no working hours")
	assert.Nil(t, ComputeSlots(d, nineToFive(), nil, 0, now, 30*time.Minute), "zero duration")
	assert.Nil(t, ComputeSlots(d, nineToFive(), nil, -30*time.Minute, now, 30*time.Minute), "negative duration")

	// Duration longer than the whole window: nothing fits.
	assert.Empty(t, ComputeSlots(d, nineToFive(), nil, 9*time.Hour, now, 30*time.Minute))
}

func TestComputeSlots_BackToBackBusyIntervals(t *testing.T) {
	d := day(2026, time.March, 2)
	now := at(d, 8, 0)
	busy := []BusyInterval{
		{Start: at(d, 9, 0), End: at(d, 10, 0), Status: StatusBooked},
		{Start: at(d, 10, 0), End: at(d, 11, 0), Status: StatusBooked},
	}

	slots := ComputeSlots(d, nineToFive(), busy, 30*time.Minute, now, 30*time.Minute)
	byStart := map[string]Slot{}
	for _, s := range slots {
		byStart[s.Start.Format("15:04")] = s
	}
	assert.True(t, byStart["09:00"].Blocked)
	assert.True(t, byStart["10:30"].Blocked)
	// 11:00 starts exactly at the second booking's end.
	assert.False(t, byStart["11:00"].Blocked)
}

func TestComputeSlots_NeverOverflowsWindow(t *testing.T) {
	d := day(2026, time.March, 2)
	hours := &DayHours{Start: TimeOfDay{Hour: 10}, End: TimeOfDay{Hour: 18, Minute: 30}}
	now := at(d, 8, 0)
	dayEnd := hours.End.On(d)

	for _, dur := range []time.Duration{15 * time.Minute, 45 * time.Minute, 2 * time.Hour, 5 * time.Hour} {
		for _, s := range ComputeSlots(d, hours, nil, dur, now, 30*time.Minute) {
			assert.False(t, s.End.After(dayEnd), "slot %s..%s overflows %s", s.Start, s.End, dayEnd)
		}
	}
}

func TestComputeSlots_Deterministic(t *testing.T) {
	d := day(2026, time.March, 2)
	now := at(d, 10, 15)
	busy := []BusyInterval{
		{Start: at(d, 12, 0), End: at(d, 13, 30), Status: StatusBooked},
		{Start: at(d, 14, 0), End: at(d, 15, 0), Status: StatusCancelled},
	}

	first := ComputeSlots(d, nineToFive(), busy, 45*time.Minute, now, 30*time.Minute)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeSlots(d, nineToFive(), busy, 45*time.Minute, now, 30*time.Minute))
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 9, Minute: 30}, tod)

	tod, err = ParseTimeOfDay("18:30:00")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 18, Minute: 30}, tod)

	for _, bad := range []string{"", "9", "25:00", "12:61", "noon"} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestNextOpenDay_SkipsToWeekday(t *testing.T) {
	// 2026-03-04 is a Wednesday.
	wed := day(2026, time.March, 4)
	open := NewWeekdays(time.Monday, time.Friday)

	got, ok := NextOpenDay(wed, open, 14, wed)
	require.True(t, ok)
	assert.Equal(t, day(2026, time.March, 6), got) // the following Friday
	assert.Equal(t, time.Friday, got.Weekday())
}

func TestNextOpenDay_SameDayWhenOpen(t *testing.T) {
	wed := day(2026, time.March, 4)
	got, ok := NextOpenDay(wed, NewWeekdays(time.Wednesday), 14, wed)
	require.True(t, ok)
	assert.Equal(t, wed, got)
}

func TestNextOpenDay_FloorRejectsEarlierDates(t *testing.T) {
	mon := day(2026, time.March, 2)
	floor := day(2026, time.March, 4)

	got, ok := NextOpenDay(mon, NewWeekdays(time.Monday), 14, floor)
	require.True(t, ok)
	assert.Equal(t, day(2026, time.March, 9), got)
	assert.False(t, got.Before(floor))
}

func TestNextOpenDay_FloorComparesCalendarDates(t *testing.T) {
	// Floor carries a late time of day; the same calendar date must still pass.
	wed := day(2026, time.March, 4)
	floor := at(wed, 23, 59)

	got, ok := NextOpenDay(wed, NewWeekdays(time.Wednesday), 14, floor)
	require.True(t, ok)
	assert.Equal(t, wed, got)
}

func TestNextOpenDay_NoneWithinHorizon(t *testing.T) {
	wed := day(2026, time.March, 4)

	_, ok := NextOpenDay(wed, NewWeekdays(), 14, wed)
	assert.False(t, ok)

	// Open only on Monday but the horizon ends before the next one.
	_, ok = NextOpenDay(day(2026, time.March, 3), NewWeekdays(time.Monday), 5, day(2026, time.March, 3))
	assert.False(t, ok)
}
