package worker

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"inkwell/config"
	bookingRepo "inkwell/database/repository/booking"
	"inkwell/models"
	"inkwell/services/notification"

	"github.com/hibiken/asynq"
)

// NewAsynqClient builds the enqueue-side client on the reminder queue DB.
func NewAsynqClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(bookings bookingRepo.BookingRepository, notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			// The server pings its broker periodically; surface failures in
			// the logs instead of running a second connection for that.
			HealthCheckFunc: func(err error) {
				if err != nil {
					log.Printf("[ReminderWorker] broker health check failed: %v", err)
				}
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(bookings, notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(bookings bookingRepo.BookingRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		b, err := bookings.GetByID(p.BookingID)
		if err != nil {
			return err
		}
		if b == nil {
			// Booking was deleted after the reminder was enqueued.
			return nil
		}
		if b.Status != models.BookingStatusConfirmed {
			return nil
		}

		// A reschedule enqueues a fresh reminder; stale ones no longer match
		// the booking's current start time and are dropped.
		startAt, err := time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.StartTime, time.Local)
		if err != nil {
			return err
		}
		if startAt.Add(-ReminderLeadTime).Format(time.RFC3339) != p.FireDate {
			return nil
		}

		log.Printf("[ReminderHandler] firing reminder for booking %s", p.BookingID)
		return notifSvc.DispatchBookingEvent(ctx, b, notification.EventBookingReminder)
	}
}
