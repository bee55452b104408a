package availability

import (
	"fmt"
	"sort"
	"time"

	"inkwell/models"
)

// ValidateSchedule rejects schedules with malformed windows, overlapping
// slots, or unknown weekday keys. Schedules are validated on write instead of
// trusting caller-supplied data.
func ValidateSchedule(schedule models.AvailabilitySchedule) error {
	for day, hours := range schedule.Weekly {
		if !validWeekday(day) {
			return fmt.Errorf("unknown weekday %q", day)
		}
		if err := validateDayHours(day, hours); err != nil {
			return err
		}
	}
	for date, hours := range schedule.Custom {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("invalid custom date %q: %w", date, err)
		}
		if err := validateDayHours(date, hours); err != nil {
			return err
		}
	}
	for _, date := range schedule.BlockedDates {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("invalid blocked date %q: %w", date, err)
		}
	}
	return nil
}

func validWeekday(name string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == name {
			return true
		}
	}
	return false
}

func validateDayHours(key string, hours models.DayHours) error {
	if !hours.Available {
		return nil
	}

	start, err := ClockToMinutes(hours.Start)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	end, err := ClockToMinutes(hours.End)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if start >= end {
		return fmt.Errorf("%s: window start %s is not before end %s", key, hours.Start, hours.End)
	}

	if len(hours.Slots) == 0 {
		return nil
	}

	type span struct{ start, end int }
	spans := make([]span, 0, len(hours.Slots))
	for _, slot := range hours.Slots {
		s, err := ClockToMinutes(slot.Start)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		e, err := ClockToMinutes(slot.End)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if s >= e {
			return fmt.Errorf("%s: slot start %s is not before end %s", key, slot.Start, slot.End)
		}
		if s < start || e > end {
			return fmt.Errorf("%s: slot %s-%s falls outside window %s-%s", key, slot.Start, slot.End, hours.Start, hours.End)
		}
		spans = append(spans, span{s, e})
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	for i := 1; i < len(spans); i++ {
		if spans[i].start < spans[i-1].end {
			return fmt.Errorf("%s: slots %s-%s and %s-%s overlap", key,
				MinutesToClock(spans[i-1].start), MinutesToClock(spans[i-1].end),
				MinutesToClock(spans[i].start), MinutesToClock(spans[i].end))
		}
	}
	return nil
}
