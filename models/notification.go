package models

import "time"

// Notification is a persisted status-change record shown to a user or artist.
type Notification struct {
	ID          string            `bson:"id" json:"id"`
	RecipientID string            `bson:"recipient_id" json:"recipientId"`
	Recipient   Role              `bson:"recipient_role" json:"recipientRole"`
	Type        string            `bson:"type" json:"type"`
	Title       string            `bson:"title" json:"title"`
	Body        string            `bson:"body" json:"body"`
	Data        map[string]string `bson:"data,omitempty" json:"data,omitempty"`
	Read        bool              `bson:"read" json:"read"`
	CreatedAt   time.Time         `bson:"created_at" json:"createdAt"`
}

// ReminderPayload is the asynq task payload for appointment reminders.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	FireDate  string `json:"fireDate"` // RFC 3339
}
