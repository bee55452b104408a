package availability

import (
	"testing"

	"inkwell/models"
)

func TestClockToMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"18:00", 1080, false},
		{"23:59", 1439, false},
		{"25:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ClockToMinutes(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ClockToMinutes(%q): expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ClockToMinutes(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ClockToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMinutesToClock(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{570, "09:30"},
		{1080, "18:00"},
		{1439, "23:59"},
	}
	for _, tt := range tests {
		if got := MinutesToClock(tt.in); got != tt.want {
			t.Errorf("MinutesToClock(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// 2026-01-05 is a Monday.
const monday = "2026-01-05"

func weeklyMondaySchedule() models.AvailabilitySchedule {
	return models.AvailabilitySchedule{
		Weekly: map[string]models.DayHours{
			"Monday": {Available: true, Start: "10:00", End: "18:00"},
		},
	}
}

func TestEffectiveWindowWeekly(t *testing.T) {
	w, open, err := EffectiveWindow(weeklyMondaySchedule(), monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !open {
		t.Fatal("expected Monday to be open")
	}
	if w.Start != 600 || w.End != 1080 {
		t.Errorf("window = %v, want 600-1080", w)
	}
}

func TestEffectiveWindowNoEntry(t *testing.T) {
	// Tuesday has no weekly entry.
	_, open, err := EffectiveWindow(weeklyMondaySchedule(), "2026-01-06")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if open {
		t.Error("expected Tuesday to be closed")
	}
}

func TestEffectiveWindowCustomReplacesWeekly(t *testing.T) {
	schedule := weeklyMondaySchedule()
	schedule.Custom = map[string]models.DayHours{
		monday: {Available: true, Start: "12:00", End: "14:00"},
	}

	w, open, err := EffectiveWindow(schedule, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !open {
		t.Fatal("expected custom window to be open")
	}
	// Replacement is total: the weekly 10:00-18:00 window must not leak in.
	if w.Start != 720 || w.End != 840 {
		t.Errorf("window = %v, want 720-840", w)
	}
}

func TestEffectiveWindowCustomUnavailable(t *testing.T) {
	schedule := weeklyMondaySchedule()
	schedule.Custom = map[string]models.DayHours{
		monday: {Available: false},
	}

	_, open, err := EffectiveWindow(schedule, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if open {
		t.Error("custom unavailable entry must close the day even when weekly is open")
	}
}

func TestEffectiveWindowBlockedDateWins(t *testing.T) {
	schedule := weeklyMondaySchedule()
	schedule.Custom = map[string]models.DayHours{
		monday: {Available: true, Start: "12:00", End: "14:00"},
	}
	schedule.BlockedDates = []string{monday}

	_, open, err := EffectiveWindow(schedule, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if open {
		t.Error("blocked date must win over custom and weekly entries")
	}
}

func TestEffectiveWindowDegenerate(t *testing.T) {
	schedule := models.AvailabilitySchedule{
		Weekly: map[string]models.DayHours{
			"Monday": {Available: true, Start: "18:00", End: "10:00"},
		},
	}
	_, open, err := EffectiveWindow(schedule, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if open {
		t.Error("a window whose start is not before its end must be closed")
	}
}

func TestEffectiveWindowInvalidDate(t *testing.T) {
	if _, _, err := EffectiveWindow(weeklyMondaySchedule(), "05-01-2026"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"identical", 600, 720, 600, 720, true},
		{"contained", 600, 720, 630, 660, true},
		{"straddles start", 600, 720, 540, 630, true},
		{"straddles end", 600, 720, 700, 800, true},
		{"adjacent before", 600, 720, 480, 600, false},
		{"adjacent after", 600, 720, 720, 840, false},
		{"disjoint", 600, 720, 800, 900, false},
	}
	for _, tt := range tests {
		if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
			t.Errorf("%s: Overlaps(%d,%d,%d,%d) = %v, want %v",
				tt.name, tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
		}
	}
}

func TestConflictsWithBookings(t *testing.T) {
	bookings := []models.Booking{
		{StartTime: "11:00", EndTime: "12:00"},
		{StartTime: "14:00", EndTime: "16:00"},
	}

	if !ConflictsWithBookings(690, 750, bookings) {
		t.Error("11:30-12:30 should conflict with 11:00-12:00")
	}
	if ConflictsWithBookings(720, 840, bookings) {
		t.Error("12:00-14:00 is adjacent on both sides and should not conflict")
	}
	if ConflictsWithBookings(600, 660, bookings) {
		t.Error("10:00-11:00 should not conflict")
	}
}

func TestConflictsWithBookingsMalformedTimes(t *testing.T) {
	bookings := []models.Booking{{StartTime: "bad", EndTime: "12:00"}}
	if !ConflictsWithBookings(600, 660, bookings) {
		t.Error("a booking with malformed times must be treated as conflicting")
	}
}
