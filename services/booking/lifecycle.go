package booking

import (
	"inkwell/models"
	"inkwell/services/notification"
)

// legalTransitions is the booking lifecycle graph. Completed, cancelled, and
// declined are terminal.
var legalTransitions = map[string][]string{
	models.BookingStatusPending: {
		models.BookingStatusConfirmed,
		models.BookingStatusDeclined,
		models.BookingStatusCancelled,
	},
	models.BookingStatusConfirmed: {
		models.BookingStatusInProgress,
		models.BookingStatusCompleted,
		models.BookingStatusCancelled,
	},
	models.BookingStatusInProgress: {
		models.BookingStatusCompleted,
	},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// eventForStatus maps a new status onto its notification event type.
func eventForStatus(status string) string {
	switch status {
	case models.BookingStatusConfirmed:
		return notification.EventBookingConfirmed
	case models.BookingStatusDeclined:
		return notification.EventBookingDeclined
	case models.BookingStatusCancelled:
		return notification.EventBookingCancelled
	case models.BookingStatusInProgress:
		return notification.EventBookingInProgress
	case models.BookingStatusCompleted:
		return notification.EventBookingCompleted
	}
	return ""
}
