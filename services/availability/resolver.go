package availability

import (
	"context"
	"fmt"

	artistRepo "inkwell/database/repository/artist"
	bookingRepo "inkwell/database/repository/booking"
	"inkwell/models"
	"inkwell/utils"

	"go.uber.org/zap"
)

// Resolver decides whether a requested interval on a date is bookable for an
// artist.
type Resolver interface {
	// IsArtistAvailable reports whether the artist can take a booking for
	// [startTime, endTime) on date. Precondition: startTime < endTime.
	IsArtistAvailable(ctx context.Context, artistID, date, startTime, endTime string) (bool, error)

	// IsArtistAvailableExcluding behaves like IsArtistAvailable but ignores
	// the booking with excludeBookingID during the conflict check, so a
	// reschedule does not conflict with its own reservation.
	IsArtistAvailableExcluding(ctx context.Context, artistID, date, startTime, endTime, excludeBookingID string) (bool, error)

	// OpenIntervals returns the free sub-intervals of the effective window on
	// date, after removing active bookings.
	OpenIntervals(ctx context.Context, artistID, date string) ([]models.TimeSlot, error)
}

// DefaultResolver is the production resolver backed by the artist and booking
// repositories.
type DefaultResolver struct {
	ArtistRepo  artistRepo.ArtistRepository
	BookingRepo bookingRepo.BookingRepository
}

// IsArtistAvailable reports whether the requested interval is bookable.
func (r *DefaultResolver) IsArtistAvailable(ctx context.Context, artistID, date, startTime, endTime string) (bool, error) {
	return r.IsArtistAvailableExcluding(ctx, artistID, date, startTime, endTime, "")
}

// IsArtistAvailableExcluding checks, in strict precedence order: blocked date,
// effective window resolution (custom entry replaces the weekly one), bounds,
// and finally conflicts against active bookings.
func (r *DefaultResolver) IsArtistAvailableExcluding(ctx context.Context, artistID, date, startTime, endTime, excludeBookingID string) (bool, error) {
	artist, err := r.ArtistRepo.GetByID(artistID)
	if err != nil {
		return false, fmt.Errorf("availability: failed to fetch artist %s: %w", artistID, err)
	}
	if artist == nil {
		return false, fmt.Errorf("availability: artist %s not found", artistID)
	}

	window, open, err := EffectiveWindow(artist.Schedule, date)
	if err != nil {
		return false, err
	}
	if !open {
		return false, nil
	}

	start, err := ClockToMinutes(startTime)
	if err != nil {
		return false, err
	}
	end, err := ClockToMinutes(endTime)
	if err != nil {
		return false, err
	}
	if !window.Contains(start, end) {
		return false, nil
	}

	bookings, err := r.BookingRepo.GetActiveByArtistDate(artistID, date, excludeBookingID)
	if err != nil {
		return false, fmt.Errorf("availability: failed to fetch bookings for artist %s on %s: %w", artistID, date, err)
	}
	if ConflictsWithBookings(start, end, bookings) {
		utils.GetLogger().Debug("availability: interval conflicts with an active booking",
			zap.String("artistID", artistID), zap.String("date", date),
			zap.String("start", startTime), zap.String("end", endTime))
		return false, nil
	}

	return true, nil
}

// OpenIntervals subtracts active bookings from the effective window and
// returns the remaining free intervals in order.
func (r *DefaultResolver) OpenIntervals(ctx context.Context, artistID, date string) ([]models.TimeSlot, error) {
	artist, err := r.ArtistRepo.GetByID(artistID)
	if err != nil {
		return nil, fmt.Errorf("availability: failed to fetch artist %s: %w", artistID, err)
	}
	if artist == nil {
		return nil, fmt.Errorf("availability: artist %s not found", artistID)
	}

	window, open, err := EffectiveWindow(artist.Schedule, date)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, nil
	}

	bookings, err := r.BookingRepo.GetActiveByArtistDate(artistID, date, "")
	if err != nil {
		return nil, fmt.Errorf("availability: failed to fetch bookings for artist %s on %s: %w", artistID, date, err)
	}

	free := []Window{window}
	for _, b := range bookings {
		bStart, err := ClockToMinutes(b.StartTime)
		if err != nil {
			continue
		}
		bEnd, err := ClockToMinutes(b.EndTime)
		if err != nil {
			continue
		}

		var updated []Window
		for _, iv := range free {
			if bEnd <= iv.Start || bStart >= iv.End {
				updated = append(updated, iv)
				continue
			}
			if bStart > iv.Start {
				updated = append(updated, Window{Start: iv.Start, End: bStart})
			}
			if bEnd < iv.End {
				updated = append(updated, Window{Start: bEnd, End: iv.End})
			}
		}
		free = updated
	}

	slots := make([]models.TimeSlot, 0, len(free))
	for _, iv := range free {
		slots = append(slots, models.TimeSlot{
			Start: MinutesToClock(iv.Start),
			End:   MinutesToClock(iv.End),
		})
	}
	return slots, nil
}
