package availability

import (
	"testing"

	"inkwell/models"
)

func TestValidateScheduleAccepts(t *testing.T) {
	schedule := models.AvailabilitySchedule{
		Weekly: map[string]models.DayHours{
			"Monday": {
				Available: true,
				Start:     "10:00",
				End:       "18:00",
				Slots: []models.TimeSlot{
					{Start: "10:00", End: "12:00"},
					{Start: "13:00", End: "18:00"},
				},
			},
			"Sunday": {Available: false},
		},
		Custom: map[string]models.DayHours{
			"2026-01-05": {Available: true, Start: "12:00", End: "14:00"},
		},
		BlockedDates: []string{"2026-01-12"},
	}
	if err := ValidateSchedule(schedule); err != nil {
		t.Fatalf("expected valid schedule, got %v", err)
	}
}

func TestValidateScheduleRejects(t *testing.T) {
	tests := []struct {
		name     string
		schedule models.AvailabilitySchedule
	}{
		{
			"unknown weekday",
			models.AvailabilitySchedule{Weekly: map[string]models.DayHours{
				"Funday": {Available: true, Start: "10:00", End: "18:00"},
			}},
		},
		{
			"window start not before end",
			models.AvailabilitySchedule{Weekly: map[string]models.DayHours{
				"Monday": {Available: true, Start: "18:00", End: "10:00"},
			}},
		},
		{
			"malformed window time",
			models.AvailabilitySchedule{Weekly: map[string]models.DayHours{
				"Monday": {Available: true, Start: "25:00", End: "26:00"},
			}},
		},
		{
			"slot outside window",
			models.AvailabilitySchedule{Weekly: map[string]models.DayHours{
				"Monday": {
					Available: true, Start: "10:00", End: "18:00",
					Slots: []models.TimeSlot{{Start: "09:00", End: "11:00"}},
				},
			}},
		},
		{
			"overlapping slots",
			models.AvailabilitySchedule{Weekly: map[string]models.DayHours{
				"Monday": {
					Available: true, Start: "10:00", End: "18:00",
					Slots: []models.TimeSlot{
						{Start: "10:00", End: "13:00"},
						{Start: "12:00", End: "14:00"},
					},
				},
			}},
		},
		{
			"slot start not before end",
			models.AvailabilitySchedule{Weekly: map[string]models.DayHours{
				"Monday": {
					Available: true, Start: "10:00", End: "18:00",
					Slots: []models.TimeSlot{{Start: "12:00", End: "12:00"}},
				},
			}},
		},
		{
			"malformed custom date",
			models.AvailabilitySchedule{Custom: map[string]models.DayHours{
				"Jan 5": {Available: true, Start: "10:00", End: "18:00"},
			}},
		},
		{
			"malformed blocked date",
			models.AvailabilitySchedule{BlockedDates: []string{"05/01/2026"}},
		},
	}
	for _, tt := range tests {
		if err := ValidateSchedule(tt.schedule); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestValidateScheduleIgnoresUnavailableDayTimes(t *testing.T) {
	// Times on an unavailable day are never consulted, so garbage is allowed.
	schedule := models.AvailabilitySchedule{
		Weekly: map[string]models.DayHours{
			"Monday": {Available: false, Start: "garbage", End: ""},
		},
	}
	if err := ValidateSchedule(schedule); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
