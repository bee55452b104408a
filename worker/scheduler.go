package worker

import (
	"context"
	"fmt"
	"time"

	"inkwell/models"
	"inkwell/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReminderLeadTime is how far ahead of the appointment the reminder fires.
const ReminderLeadTime = 24 * time.Hour

// ReminderClient enqueues appointment reminder tasks.
type ReminderClient struct {
	Client *asynq.Client
}

// ScheduleBookingReminder enqueues a reminder that fires 24 hours before the
// appointment starts. Appointments closer than that get no reminder.
func (r *ReminderClient) ScheduleBookingReminder(ctx context.Context, booking *models.Booking) error {
	if r.Client == nil {
		return fmt.Errorf("reminder client not initialized")
	}

	startAt, err := time.ParseInLocation("2006-01-02 15:04", booking.Date+" "+booking.StartTime, time.Local)
	if err != nil {
		return fmt.Errorf("failed to parse appointment time: %w", err)
	}

	fireAt := startAt.Add(-ReminderLeadTime)
	if !fireAt.After(time.Now()) {
		utils.GetLogger().Info("appointment too soon for a reminder",
			zap.String("bookingID", booking.ID))
		return nil
	}

	payload := models.ReminderPayload{
		BookingID: booking.ID,
		FireDate:  fireAt.Format(time.RFC3339),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}

	if _, err := r.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}
