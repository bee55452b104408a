package notification

import (
	"fmt"

	"inkwell/models"
)

// Booking event types recognized by the dispatcher.
const (
	EventBookingCreated    = "booking_created"
	EventBookingConfirmed  = "booking_confirmed"
	EventBookingDeclined   = "booking_declined"
	EventBookingCancelled  = "booking_cancelled"
	EventBookingInProgress = "booking_in_progress"
	EventBookingCompleted  = "booking_completed"
	EventBookingDeleted    = "booking_deleted"
	EventBookingReminder   = "booking_reminder"
	EventPaymentReceived   = "payment_received"
)

type eventTemplate struct {
	title      string
	clientBody string
	artistBody string
}

// eventTable maps an event type to its human-readable notification content.
// %s placeholders are date, start time.
var eventTable = map[string]eventTemplate{
	EventBookingCreated: {
		title:      "New booking request",
		clientBody: "Your booking request for %s at %s was sent. The artist will review it shortly.",
		artistBody: "You have a new booking request for %s at %s.",
	},
	EventBookingConfirmed: {
		title:      "Booking confirmed",
		clientBody: "Your booking for %s at %s has been confirmed.",
		artistBody: "You confirmed the booking for %s at %s.",
	},
	EventBookingDeclined: {
		title:      "Booking declined",
		clientBody: "Your booking request for %s at %s was declined.",
		artistBody: "You declined the booking request for %s at %s.",
	},
	EventBookingCancelled: {
		title:      "Booking cancelled",
		clientBody: "The booking for %s at %s has been cancelled.",
		artistBody: "The booking for %s at %s has been cancelled.",
	},
	EventBookingInProgress: {
		title:      "Session started",
		clientBody: "Your session on %s at %s is underway.",
		artistBody: "Session on %s at %s marked as in progress.",
	},
	EventBookingCompleted: {
		title:      "Session completed",
		clientBody: "Your session on %s at %s is complete. You can now leave a rating.",
		artistBody: "Session on %s at %s marked as completed.",
	},
	EventBookingDeleted: {
		title:      "Booking removed",
		clientBody: "The pending booking for %s at %s was removed.",
		artistBody: "The pending booking request for %s at %s was removed.",
	},
	EventBookingReminder: {
		title:      "Upcoming appointment",
		clientBody: "Reminder: your appointment is on %s at %s.",
		artistBody: "Reminder: you have an appointment on %s at %s.",
	},
	EventPaymentReceived: {
		title:      "Deposit received",
		clientBody: "Your deposit for the booking on %s at %s was received.",
		artistBody: "The deposit for the booking on %s at %s has been paid.",
	},
}

func renderEvent(eventType string, booking *models.Booking) (title, clientBody, artistBody string, err error) {
	tmpl, ok := eventTable[eventType]
	if !ok {
		return "", "", "", fmt.Errorf("unknown booking event type %q", eventType)
	}
	return tmpl.title,
		fmt.Sprintf(tmpl.clientBody, booking.Date, booking.StartTime),
		fmt.Sprintf(tmpl.artistBody, booking.Date, booking.StartTime),
		nil
}
