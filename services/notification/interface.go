package notification

import (
	"context"

	artistRepo "inkwell/database/repository/artist"
	notificationRepo "inkwell/database/repository/notification"
	userRepo "inkwell/database/repository/user"
	"inkwell/models"
)

// NotificationService records status-change events and pushes them to the
// involved parties.
type NotificationService interface {
	// DispatchBookingEvent writes one notification record per involved party
	// (artist and client) and fires a best-effort push to each. Dispatch
	// failures never roll back the booking mutation that triggered them.
	DispatchBookingEvent(ctx context.Context, booking *models.Booking, eventType string) error

	ListForRecipient(ctx context.Context, recipientID string, limit int64, afterID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo    notificationRepo.NotificationRepository
	Users   userRepo.UserRepository
	Artists artistRepo.ArtistRepository
}
