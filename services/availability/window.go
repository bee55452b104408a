package availability

import (
	"fmt"
	"time"

	"inkwell/models"
)

// ClockToMinutes parses a zero-padded 24-hour "HH:MM" string into minutes
// from midnight.
func ClockToMinutes(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// MinutesToClock formats minutes from midnight as "HH:MM".
func MinutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Window is an effective bookable window on a specific date, in minutes from
// midnight.
type Window struct {
	Start int
	End   int
}

// EffectiveWindow resolves the bookable window for a date against a schedule,
// in strict precedence order: blocked dates first, then a custom entry for the
// exact date (which replaces the weekly entry entirely, never merges with it),
// then the weekly entry for the date's weekday. The second return is false
// when no booking is possible on that date at all.
func EffectiveWindow(schedule models.AvailabilitySchedule, date string) (Window, bool, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return Window{}, false, fmt.Errorf("invalid date %q: %w", date, err)
	}

	for _, blocked := range schedule.BlockedDates {
		if blocked == date {
			return Window{}, false, nil
		}
	}

	hours, found := schedule.Custom[date]
	if !found {
		hours, found = schedule.Weekly[day.Weekday().String()]
	}
	if !found || !hours.Available {
		return Window{}, false, nil
	}

	start, err := ClockToMinutes(hours.Start)
	if err != nil {
		return Window{}, false, err
	}
	end, err := ClockToMinutes(hours.End)
	if err != nil {
		return Window{}, false, err
	}
	if start >= end {
		return Window{}, false, nil
	}

	return Window{Start: start, End: end}, true, nil
}

// Contains reports whether [start,end) lies entirely within the window.
func (w Window) Contains(start, end int) bool {
	return start >= w.Start && end <= w.End
}

// Overlaps reports whether two half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// ConflictsWithBookings reports whether [start,end) overlaps any of the given
// bookings' intervals. Bookings with malformed times are treated as
// conflicting rather than silently ignored.
func ConflictsWithBookings(start, end int, bookings []models.Booking) bool {
	for _, b := range bookings {
		bStart, err := ClockToMinutes(b.StartTime)
		if err != nil {
			return true
		}
		bEnd, err := ClockToMinutes(b.EndTime)
		if err != nil {
			return true
		}
		if Overlaps(start, end, bStart, bEnd) {
			return true
		}
	}
	return false
}
