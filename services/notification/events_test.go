package notification

import (
	"strings"
	"testing"

	"inkwell/models"
)

func TestRenderEventKnownTypes(t *testing.T) {
	b := &models.Booking{Date: "2026-01-05", StartTime: "10:00"}
	events := []string{
		EventBookingCreated,
		EventBookingConfirmed,
		EventBookingDeclined,
		EventBookingCancelled,
		EventBookingInProgress,
		EventBookingCompleted,
		EventBookingDeleted,
		EventBookingReminder,
		EventPaymentReceived,
	}
	for _, event := range events {
		title, clientBody, artistBody, err := renderEvent(event, b)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", event, err)
			continue
		}
		if title == "" {
			t.Errorf("%s: empty title", event)
		}
		for _, body := range []string{clientBody, artistBody} {
			if !strings.Contains(body, "2026-01-05") || !strings.Contains(body, "10:00") {
				t.Errorf("%s: body missing date or time: %q", event, body)
			}
		}
	}
}

func TestRenderEventUnknownType(t *testing.T) {
	b := &models.Booking{Date: "2026-01-05", StartTime: "10:00"}
	if _, _, _, err := renderEvent("booking_exploded", b); err == nil {
		t.Error("expected error for unknown event type")
	}
}
