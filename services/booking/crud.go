package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "inkwell/database/repository/booking"
	"inkwell/models"
	"inkwell/services/availability"
	"inkwell/services/notification"
	"inkwell/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CreateBooking checks availability, persists the booking in state pending,
// and notifies both parties. The repository re-checks conflicts inside a
// transaction, so two concurrent requests for the same slot cannot both
// commit.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	start, err := availability.ClockToMinutes(input.StartTime)
	if err != nil {
		return nil, NewSchedulingConflictError(err.Error())
	}
	end, err := availability.ClockToMinutes(input.EndTime)
	if err != nil {
		return nil, NewSchedulingConflictError(err.Error())
	}
	if start >= end {
		return nil, NewSchedulingConflictError(fmt.Sprintf("start time %s is not before end time %s", input.StartTime, input.EndTime))
	}

	available, err := s.Resolver.IsArtistAvailable(ctx, input.ArtistID, input.Date, input.StartTime, input.EndTime)
	if err != nil {
		return nil, NewExternalFailureError(err.Error())
	}
	if !available {
		return nil, NewSchedulingConflictError(fmt.Sprintf("artist %s is not available on %s from %s to %s",
			input.ArtistID, input.Date, input.StartTime, input.EndTime))
	}

	artist, err := s.ArtistRepo.GetByID(input.ArtistID)
	if err != nil {
		return nil, NewExternalFailureError(err.Error())
	}
	if artist == nil {
		return nil, NewNotFoundError(fmt.Sprintf("artist %s not found", input.ArtistID))
	}

	duration := float64(end-start) / 60.0
	price := duration * artist.HourlyRate
	booking := &models.Booking{
		ID:            uuid.New().String(),
		ArtistID:      input.ArtistID,
		ClientID:      input.ClientID,
		Date:          input.Date,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		DurationHours: duration,
		Status:        models.BookingStatusPending,
		Price:         price,
		Deposit:       price * artist.DepositPercent,
		Design:        input.Design,
	}

	if err := s.Repo.CreateIfSlotFree(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, NewSchedulingConflictError(fmt.Sprintf("slot %s-%s on %s was taken by a concurrent booking",
				input.StartTime, input.EndTime, input.Date))
		}
		return nil, NewExternalFailureError(err.Error())
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("artistID", booking.ArtistID),
		zap.String("date", booking.Date))

	// The booking is committed at this point; a dispatch failure surfaces to
	// the caller but does not undo it.
	if err := s.NotificationSvc.DispatchBookingEvent(ctx, booking, notification.EventBookingCreated); err != nil {
		return nil, NewExternalFailureError(err.Error())
	}

	return booking, nil
}

// GetBooking fetches one booking.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, NewExternalFailureError(err.Error())
	}
	if b == nil {
		return nil, NewNotFoundError(fmt.Sprintf("booking %s not found", id))
	}
	return b, nil
}

// UpdateBooking applies a reschedule and/or a status transition. Reschedules
// re-run the availability check with the booking's own reservation excluded
// from the conflict query.
func (s *DefaultBookingService) UpdateBooking(ctx context.Context, id string, updates models.BookingUpdates) (*models.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	updateDoc := bson.M{}
	rescheduled := false

	if updates.Date != nil || updates.StartTime != nil || updates.EndTime != nil {
		if models.IsTerminalBookingStatus(b.Status) {
			return nil, NewInvalidStateError(fmt.Sprintf("cannot reschedule a %s booking", b.Status))
		}

		newDate, newStart, newEnd := b.Date, b.StartTime, b.EndTime
		if updates.Date != nil {
			newDate = *updates.Date
		}
		if updates.StartTime != nil {
			newStart = *updates.StartTime
		}
		if updates.EndTime != nil {
			newEnd = *updates.EndTime
		}

		startMin, err := availability.ClockToMinutes(newStart)
		if err != nil {
			return nil, NewSchedulingConflictError(err.Error())
		}
		endMin, err := availability.ClockToMinutes(newEnd)
		if err != nil {
			return nil, NewSchedulingConflictError(err.Error())
		}
		if startMin >= endMin {
			return nil, NewSchedulingConflictError(fmt.Sprintf("start time %s is not before end time %s", newStart, newEnd))
		}

		available, err := s.Resolver.IsArtistAvailableExcluding(ctx, b.ArtistID, newDate, newStart, newEnd, b.ID)
		if err != nil {
			return nil, NewExternalFailureError(err.Error())
		}
		if !available {
			return nil, NewSchedulingConflictError(fmt.Sprintf("artist %s is not available on %s from %s to %s",
				b.ArtistID, newDate, newStart, newEnd))
		}

		newDuration := float64(endMin-startMin) / 60.0
		if newDuration != b.DurationHours {
			// Price follows duration until the deposit locks it in.
			if b.DepositPaid {
				return nil, NewInvalidStateError(fmt.Sprintf("cannot change the length of booking %s after its deposit was paid", b.ID))
			}
			artist, err := s.ArtistRepo.GetByID(b.ArtistID)
			if err != nil {
				return nil, NewExternalFailureError(err.Error())
			}
			if artist == nil {
				return nil, NewNotFoundError(fmt.Sprintf("artist %s not found", b.ArtistID))
			}
			b.Price = newDuration * artist.HourlyRate
			b.Deposit = b.Price * artist.DepositPercent
			updateDoc["price"] = b.Price
			updateDoc["deposit"] = b.Deposit
		}

		b.Date, b.StartTime, b.EndTime = newDate, newStart, newEnd
		b.DurationHours = newDuration
		updateDoc["date"] = newDate
		updateDoc["start_time"] = newStart
		updateDoc["end_time"] = newEnd
		updateDoc["duration_hours"] = newDuration
		rescheduled = true
	}

	var statusEvent string
	if updates.Status != nil {
		newStatus := models.NormalizeBookingStatus(*updates.Status)
		if !CanTransition(b.Status, newStatus) {
			return nil, NewInvalidStateError(fmt.Sprintf("cannot transition booking from %s to %s", b.Status, newStatus))
		}
		b.Status = newStatus
		updateDoc["status"] = newStatus
		statusEvent = eventForStatus(newStatus)
	}

	if len(updateDoc) == 0 {
		return b, nil
	}

	if err := s.Repo.UpdateSetDocument(id, updateDoc); err != nil {
		return nil, NewExternalFailureError(err.Error())
	}

	// A confirmed booking needs a reminder matching its current start time, so
	// both a fresh confirmation and a reschedule enqueue one. The reminder
	// handler drops any task whose fire date no longer matches the booking.
	if b.Status == models.BookingStatusConfirmed && (rescheduled || statusEvent != "") && s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(ctx, b); err != nil {
			utils.GetLogger().Warn("failed to schedule booking reminder",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}

	if statusEvent != "" {
		if err := s.NotificationSvc.DispatchBookingEvent(ctx, b, statusEvent); err != nil {
			return nil, NewExternalFailureError(err.Error())
		}
	}

	return b, nil
}

// DeleteBooking removes a booking, permitted only while it is still pending.
func (s *DefaultBookingService) DeleteBooking(ctx context.Context, id string) error {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return err
	}
	if b.Status != models.BookingStatusPending {
		return NewInvalidStateError(fmt.Sprintf("only pending bookings can be deleted; booking %s is %s", id, b.Status))
	}

	if err := s.Repo.Delete(id); err != nil {
		return NewExternalFailureError(err.Error())
	}

	if err := s.NotificationSvc.DispatchBookingEvent(ctx, b, notification.EventBookingDeleted); err != nil {
		return NewExternalFailureError(err.Error())
	}
	return nil
}

// AddBookingMessage appends one message to the booking's thread.
func (s *DefaultBookingService) AddBookingMessage(ctx context.Context, id, authorID, text string) (*models.BookingMessage, error) {
	if _, err := s.GetBooking(ctx, id); err != nil {
		return nil, err
	}

	msg := models.BookingMessage{
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.AppendMessage(id, msg); err != nil {
		return nil, NewExternalFailureError(err.Error())
	}
	return &msg, nil
}

// MarkDepositPaid records a paid deposit and auto-confirms a pending booking.
func (s *DefaultBookingService) MarkDepositPaid(ctx context.Context, id, transactionID string) (*models.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if models.IsTerminalBookingStatus(b.Status) {
		return nil, NewInvalidStateError(fmt.Sprintf("cannot pay deposit on a %s booking", b.Status))
	}

	updateDoc := bson.M{"deposit_paid": true}
	b.DepositPaid = true
	confirmedNow := false
	if b.Status == models.BookingStatusPending {
		b.Status = models.BookingStatusConfirmed
		updateDoc["status"] = models.BookingStatusConfirmed
		confirmedNow = true
	}

	if err := s.Repo.UpdateSetDocument(id, updateDoc); err != nil {
		return nil, NewExternalFailureError(err.Error())
	}

	if err := s.NotificationSvc.DispatchBookingEvent(ctx, b, notification.EventPaymentReceived); err != nil {
		return nil, NewExternalFailureError(err.Error())
	}
	if confirmedNow {
		if s.Reminders != nil {
			if err := s.Reminders.ScheduleBookingReminder(ctx, b); err != nil {
				utils.GetLogger().Warn("failed to schedule booking reminder",
					zap.String("bookingID", b.ID), zap.Error(err))
			}
		}
		if err := s.NotificationSvc.DispatchBookingEvent(ctx, b, notification.EventBookingConfirmed); err != nil {
			return nil, NewExternalFailureError(err.Error())
		}
	}

	return b, nil
}

// ListArtistBookings returns the artist's bookings, paginated.
func (s *DefaultBookingService) ListArtistBookings(ctx context.Context, artistID string, limit int64, afterID string) ([]models.Booking, error) {
	items, err := s.Repo.ListByArtist(artistID, limit, afterID)
	if err != nil {
		return nil, NewExternalFailureError(err.Error())
	}
	return items, nil
}

// ListClientBookings returns the client's bookings, paginated.
func (s *DefaultBookingService) ListClientBookings(ctx context.Context, clientID string, limit int64, afterID string) ([]models.Booking, error) {
	items, err := s.Repo.ListByClient(clientID, limit, afterID)
	if err != nil {
		return nil, NewExternalFailureError(err.Error())
	}
	return items, nil
}
