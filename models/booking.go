package models

import "time"

// Booking statuses. Pending bookings await artist review; confirmed and
// in-progress bookings still occupy their slot. Completed, cancelled, and
// declined are terminal.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusInProgress = "in_progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
	BookingStatusDeclined   = "declined"
)

// ActiveBookingStatuses are the statuses that occupy a slot for conflict checks.
var ActiveBookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusInProgress,
}

// NormalizeBookingStatus maps legacy aliases onto the canonical status set.
func NormalizeBookingStatus(status string) string {
	if status == "accepted" {
		return BookingStatusConfirmed
	}
	return status
}

// IsTerminalBookingStatus reports whether a status permits no further transitions.
func IsTerminalBookingStatus(status string) bool {
	switch status {
	case BookingStatusCompleted, BookingStatusCancelled, BookingStatusDeclined:
		return true
	}
	return false
}

// Booking represents one client's request for artist time.
type Booking struct {
	ID            string  `bson:"id" json:"id"`
	ArtistID      string  `bson:"artist_id" json:"artistId"`
	ClientID      string  `bson:"client_id" json:"clientId"`
	Date          string  `bson:"date" json:"date"`            // "2006-01-02"
	StartTime     string  `bson:"start_time" json:"startTime"` // "HH:MM", 24-hour
	EndTime       string  `bson:"end_time" json:"endTime"`     // "HH:MM", 24-hour
	DurationHours float64 `bson:"duration_hours" json:"durationHours"`
	Status        string  `bson:"status" json:"status"`
	Price         float64 `bson:"price" json:"price"`
	Deposit       float64 `bson:"deposit" json:"deposit"`
	DepositPaid   bool    `bson:"deposit_paid" json:"depositPaid"`

	Design    DesignBrief      `bson:"design" json:"designDetails"`
	Messages  []BookingMessage `bson:"messages,omitempty" json:"messages,omitempty"`
	Rating    *BookingRating   `bson:"rating,omitempty" json:"rating,omitempty"`
	CreatedAt time.Time        `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time        `bson:"updated_at" json:"updatedAt"`
}

// DesignBrief describes the tattoo the client wants. Opaque to scheduling.
type DesignBrief struct {
	Description    string   `bson:"description" json:"description"`
	Size           string   `bson:"size,omitempty" json:"size,omitempty"`
	Placement      string   `bson:"placement,omitempty" json:"placement,omitempty"`
	Style          string   `bson:"style,omitempty" json:"style,omitempty"`
	Color          bool     `bson:"color" json:"color"`
	ReferenceURLs  []string `bson:"reference_urls,omitempty" json:"referenceImages,omitempty"`
	GeneratedByAI  bool     `bson:"generated_by_ai,omitempty" json:"generatedByAi,omitempty"`
	SourceDesignID string   `bson:"source_design_id,omitempty" json:"sourceDesignId,omitempty"`
}

// BookingMessage is one entry in a booking's append-only message thread.
type BookingMessage struct {
	AuthorID  string    `bson:"author_id" json:"authorId"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// BookingRating is the single rating a client may leave once a booking completes.
type BookingRating struct {
	Stars     int       `bson:"stars" json:"stars"` // 1..5
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// BookingUpdates carries the mutable fields of an update request. Nil pointers
// leave the stored value untouched.
type BookingUpdates struct {
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Status    *string `json:"status,omitempty"`
}
