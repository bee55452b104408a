package models

import "time"

// Artist represents a tattoo artist profile.
type Artist struct {
	ID             string   `bson:"id" json:"id"`
	Email          string   `bson:"email" json:"email"`
	Name           string   `bson:"name" json:"name"`
	PasswordHash   string   `bson:"password_hash" json:"-"`
	Bio            string   `bson:"bio,omitempty" json:"bio,omitempty"`
	Styles         []string `bson:"styles,omitempty" json:"styles,omitempty"` // e.g., "traditional", "realism", "blackwork"
	PortfolioURLs  []string `bson:"portfolio_urls,omitempty" json:"portfolioUrls,omitempty"`
	HourlyRate     float64  `bson:"hourly_rate" json:"hourlyRate"`
	DepositPercent float64  `bson:"deposit_percent" json:"depositPercent"` // fraction of price required up front, e.g. 0.25

	Schedule AvailabilitySchedule `bson:"schedule" json:"schedule"`

	// Running rating aggregate. Updated together, only through booking ratings.
	Rating       float64 `bson:"rating" json:"rating"`
	TotalRatings int     `bson:"total_ratings" json:"totalRatings"`

	TokenHash string    `bson:"token_hash,omitempty" json:"-"`
	FCMToken  string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// AvailabilitySchedule holds an artist's bookable hours.
type AvailabilitySchedule struct {
	// Weekly maps weekday names ("Monday".."Sunday") to that day's hours.
	Weekly map[string]DayHours `bson:"weekly,omitempty" json:"weeklySchedule,omitempty"`
	// Custom maps ISO dates ("2006-01-02") to hours that replace the weekly
	// entry for that exact date. Replacement is total, never a merge.
	Custom map[string]DayHours `bson:"custom,omitempty" json:"customAvailability,omitempty"`
	// BlockedDates are ISO dates on which no booking is possible at all.
	BlockedDates []string `bson:"blocked_dates,omitempty" json:"blockedDates,omitempty"`
}

// DayHours is the bookable window for a single day.
type DayHours struct {
	Available bool       `bson:"available" json:"available"`
	Start     string     `bson:"start,omitempty" json:"start,omitempty"` // "HH:MM", 24-hour
	End       string     `bson:"end,omitempty" json:"end,omitempty"`     // "HH:MM", 24-hour
	Slots     []TimeSlot `bson:"slots,omitempty" json:"slots,omitempty"`
}

// TimeSlot is a contiguous interval within a day's hours.
type TimeSlot struct {
	Start     string `bson:"start" json:"start"` // "HH:MM", 24-hour
	End       string `bson:"end" json:"end"`     // "HH:MM", 24-hour
	IsBooked  bool   `bson:"is_booked" json:"isBooked"`
	BookingID string `bson:"booking_id,omitempty" json:"bookingId,omitempty"` // display-only reference
}

// ArtistDTO is the public view of an artist returned to clients.
type ArtistDTO struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Bio           string   `json:"bio,omitempty"`
	Styles        []string `json:"styles,omitempty"`
	PortfolioURLs []string `json:"portfolioUrls,omitempty"`
	HourlyRate    float64  `json:"hourlyRate"`
	Rating        float64  `json:"rating"`
	TotalRatings  int      `json:"totalRatings"`
}

// PublicView strips credentials and internal fields from an artist record.
func (a *Artist) PublicView() ArtistDTO {
	return ArtistDTO{
		ID:            a.ID,
		Name:          a.Name,
		Bio:           a.Bio,
		Styles:        a.Styles,
		PortfolioURLs: a.PortfolioURLs,
		HourlyRate:    a.HourlyRate,
		Rating:        a.Rating,
		TotalRatings:  a.TotalRatings,
	}
}
