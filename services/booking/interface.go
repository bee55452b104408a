package booking

import (
	"context"

	artistRepo "inkwell/database/repository/artist"
	bookingRepo "inkwell/database/repository/booking"
	"inkwell/models"
	"inkwell/services/availability"
	"inkwell/services/notification"
)

// CreateBookingInput carries everything needed to request artist time.
type CreateBookingInput struct {
	ArtistID  string             `json:"artistId" binding:"required"`
	ClientID  string             `json:"-"`
	Date      string             `json:"date" binding:"required"`      // "2006-01-02"
	StartTime string             `json:"startTime" binding:"required"` // "HH:MM"
	EndTime   string             `json:"endTime" binding:"required"`   // "HH:MM"
	Design    models.DesignBrief `json:"designDetails"`
}

// ReminderScheduler enqueues appointment reminders for confirmed bookings.
type ReminderScheduler interface {
	ScheduleBookingReminder(ctx context.Context, booking *models.Booking) error
}

// BookingService manages the booking lifecycle.
type BookingService interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id string, updates models.BookingUpdates) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	AddBookingMessage(ctx context.Context, id, authorID, text string) (*models.BookingMessage, error)
	AddBookingRating(ctx context.Context, id string, stars int, comment string) (*models.BookingRating, error)
	MarkDepositPaid(ctx context.Context, id, transactionID string) (*models.Booking, error)
	ListArtistBookings(ctx context.Context, artistID string, limit int64, afterID string) ([]models.Booking, error)
	ListClientBookings(ctx context.Context, clientID string, limit int64, afterID string) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo            bookingRepo.BookingRepository
	ArtistRepo      artistRepo.ArtistRepository
	Resolver        availability.Resolver
	NotificationSvc notification.NotificationService
	Reminders       ReminderScheduler
}
