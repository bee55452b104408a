package bookingRepo

import (
	"context"

	"inkwell/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines data access for booking documents.
type BookingRepository interface {
	// CreateIfSlotFree inserts the booking inside a transaction that first
	// re-checks for conflicting active bookings on the same artist and date.
	// Returns ErrSlotTaken when another booking overlaps the interval.
	CreateIfSlotFree(ctx context.Context, booking *models.Booking) error

	GetByID(id string) (*models.Booking, error)
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error

	// GetActiveByArtistDate returns active bookings (pending, confirmed,
	// in_progress) for an artist on a date, excluding excludeBookingID if
	// non-empty.
	GetActiveByArtistDate(artistID, date, excludeBookingID string) ([]models.Booking, error)

	ListByArtist(artistID string, limit int64, afterID string) ([]models.Booking, error)
	ListByClient(clientID string, limit int64, afterID string) ([]models.Booking, error)

	AppendMessage(id string, msg models.BookingMessage) error
	SetRating(id string, rating models.BookingRating) error
}
