package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inkwell/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned when the transactional conflict re-check finds an
// overlapping active booking.
var ErrSlotTaken = errors.New("requested slot is already taken")

// CreateIfSlotFree inserts the booking inside a Mongo transaction. The
// availability check the caller already ran and this insert are two separate
// round-trips; re-checking inside the transaction closes the window in which
// two concurrent requests could both see the slot as free.
func (r *MongoBookingRepo) CreateIfSlotFree(ctx context.Context, booking *models.Booking) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	txnFn := func(sc mongo.SessionContext) error {
		filter := conflictFilter(booking.ArtistID, booking.Date, booking.StartTime, booking.EndTime, "")
		count, err := r.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("conflict re-check failed: %w", err)
		}
		if count > 0 {
			return ErrSlotTaken
		}

		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
