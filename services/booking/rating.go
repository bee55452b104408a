package booking

import (
	"context"
	"fmt"
	"time"

	"inkwell/models"
	"inkwell/utils"

	"go.uber.org/zap"
)

// AddBookingRating attaches the client's single rating to a completed booking
// and folds it into the artist's running average.
func (s *DefaultBookingService) AddBookingRating(ctx context.Context, id string, stars int, comment string) (*models.BookingRating, error) {
	if stars < 1 || stars > 5 {
		return nil, NewInvalidStateError(fmt.Sprintf("rating must be between 1 and 5, got %d", stars))
	}

	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingStatusCompleted {
		return nil, NewInvalidStateError(fmt.Sprintf("only completed bookings can be rated; booking %s is %s", id, b.Status))
	}
	if b.Rating != nil {
		return nil, NewAlreadyRatedError(fmt.Sprintf("booking %s already has a rating", id))
	}

	rating := models.BookingRating{
		Stars:     stars,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	// The repository update matches only while no rating exists, which closes
	// the race between two concurrent rating attempts.
	if err := s.Repo.SetRating(id, rating); err != nil {
		return nil, NewAlreadyRatedError(err.Error())
	}

	if err := s.ArtistRepo.ApplyRating(b.ArtistID, stars); err != nil {
		utils.GetLogger().Error("rating stored but artist aggregate update failed",
			zap.String("bookingID", id), zap.String("artistID", b.ArtistID), zap.Error(err))
		return nil, NewExternalFailureError(err.Error())
	}

	return &rating, nil
}
