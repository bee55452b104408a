package booking

import (
	"testing"

	"inkwell/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{models.BookingStatusPending, models.BookingStatusConfirmed, true},
		{models.BookingStatusPending, models.BookingStatusDeclined, true},
		{models.BookingStatusPending, models.BookingStatusCancelled, true},
		{models.BookingStatusPending, models.BookingStatusInProgress, false},
		{models.BookingStatusPending, models.BookingStatusCompleted, false},
		{models.BookingStatusConfirmed, models.BookingStatusInProgress, true},
		{models.BookingStatusConfirmed, models.BookingStatusCompleted, true},
		{models.BookingStatusConfirmed, models.BookingStatusCancelled, true},
		{models.BookingStatusConfirmed, models.BookingStatusDeclined, false},
		{models.BookingStatusConfirmed, models.BookingStatusPending, false},
		{models.BookingStatusInProgress, models.BookingStatusCompleted, true},
		{models.BookingStatusInProgress, models.BookingStatusCancelled, false},
		{models.BookingStatusCompleted, models.BookingStatusCancelled, false},
		{models.BookingStatusCancelled, models.BookingStatusConfirmed, false},
		{models.BookingStatusDeclined, models.BookingStatusPending, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestNormalizeBookingStatus(t *testing.T) {
	if got := models.NormalizeBookingStatus("accepted"); got != models.BookingStatusConfirmed {
		t.Errorf("accepted should normalize to confirmed, got %q", got)
	}
	if got := models.NormalizeBookingStatus("declined"); got != models.BookingStatusDeclined {
		t.Errorf("declined should pass through, got %q", got)
	}
}

func TestIsTerminalBookingStatus(t *testing.T) {
	terminal := []string{
		models.BookingStatusCompleted,
		models.BookingStatusCancelled,
		models.BookingStatusDeclined,
	}
	for _, s := range terminal {
		if !models.IsTerminalBookingStatus(s) {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range models.ActiveBookingStatuses {
		if models.IsTerminalBookingStatus(s) {
			t.Errorf("%s should not be terminal", s)
		}
	}
}
