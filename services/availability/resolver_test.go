package availability

import (
	"context"
	"testing"

	"inkwell/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeArtistRepo struct {
	artist *models.Artist
}

func (f *fakeArtistRepo) Create(*models.Artist) error                        { return nil }
func (f *fakeArtistRepo) Update(*models.Artist) error                        { return nil }
func (f *fakeArtistRepo) UpdateSetDocument(string, bson.M) error             { return nil }
func (f *fakeArtistRepo) Delete(string) error                                { return nil }
func (f *fakeArtistRepo) GetByEmail(string) (*models.Artist, error)          { return nil, nil }
func (f *fakeArtistRepo) GetAll() ([]models.Artist, error)                   { return nil, nil }
func (f *fakeArtistRepo) SearchByStyle(string, int64) ([]models.Artist, error) {
	return nil, nil
}
func (f *fakeArtistRepo) SetSchedule(string, models.AvailabilitySchedule) error { return nil }
func (f *fakeArtistRepo) ApplyRating(string, int) error                         { return nil }

func (f *fakeArtistRepo) GetByID(id string) (*models.Artist, error) {
	if f.artist != nil && f.artist.ID == id {
		return f.artist, nil
	}
	return nil, nil
}

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) CreateIfSlotFree(context.Context, *models.Booking) error { return nil }
func (f *fakeBookingRepo) GetByID(string) (*models.Booking, error)                 { return nil, nil }
func (f *fakeBookingRepo) UpdateSetDocument(string, bson.M) error                  { return nil }
func (f *fakeBookingRepo) Delete(string) error                                     { return nil }
func (f *fakeBookingRepo) ListByArtist(string, int64, string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) ListByClient(string, int64, string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) AppendMessage(string, models.BookingMessage) error { return nil }
func (f *fakeBookingRepo) SetRating(string, models.BookingRating) error      { return nil }

func (f *fakeBookingRepo) GetActiveByArtistDate(artistID, date, excludeBookingID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ArtistID != artistID || b.Date != date {
			continue
		}
		if excludeBookingID != "" && b.ID == excludeBookingID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func newTestResolver(schedule models.AvailabilitySchedule, bookings []models.Booking) *DefaultResolver {
	return &DefaultResolver{
		ArtistRepo: &fakeArtistRepo{artist: &models.Artist{
			ID:       "artist-1",
			Schedule: schedule,
		}},
		BookingRepo: &fakeBookingRepo{bookings: bookings},
	}
}

func TestIsArtistAvailable(t *testing.T) {
	schedule := models.AvailabilitySchedule{
		Weekly: map[string]models.DayHours{
			"Monday": {Available: true, Start: "10:00", End: "18:00"},
		},
		BlockedDates: []string{"2026-01-12"},
	}
	bookings := []models.Booking{
		{ID: "b1", ArtistID: "artist-1", Date: monday, StartTime: "11:00", EndTime: "12:00", Status: models.BookingStatusConfirmed},
	}
	r := newTestResolver(schedule, bookings)
	ctx := context.Background()

	tests := []struct {
		name             string
		date, start, end string
		want             bool
	}{
		{"free interval", monday, "13:00", "15:00", true},
		{"conflicts with booking", monday, "11:30", "12:30", false},
		{"adjacent to booking", monday, "12:00", "13:00", true},
		{"before window", monday, "09:00", "10:00", false},
		{"past window end", monday, "17:00", "19:00", false},
		{"exactly the window", monday, "10:00", "18:00", false}, // booking inside
		{"closed weekday", "2026-01-06", "11:00", "12:00", false},
		{"blocked date", "2026-01-12", "11:00", "12:00", false},
	}
	for _, tt := range tests {
		got, err := r.IsArtistAvailable(ctx, "artist-1", tt.date, tt.start, tt.end)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: IsArtistAvailable = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsArtistAvailableIsReadOnly(t *testing.T) {
	schedule := weeklyMondaySchedule()
	r := newTestResolver(schedule, nil)
	ctx := context.Background()

	// Repeated checks of the same interval must keep answering the same,
	// since a check reserves nothing.
	for i := 0; i < 3; i++ {
		ok, err := r.IsArtistAvailable(ctx, "artist-1", monday, "11:00", "12:00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatalf("check %d: expected available", i)
		}
	}
}

func TestIsArtistAvailableExcluding(t *testing.T) {
	schedule := weeklyMondaySchedule()
	bookings := []models.Booking{
		{ID: "b1", ArtistID: "artist-1", Date: monday, StartTime: "11:00", EndTime: "13:00", Status: models.BookingStatusConfirmed},
	}
	r := newTestResolver(schedule, bookings)
	ctx := context.Background()

	// Shifting b1 by an hour overlaps its own old slot; the exclusion makes
	// the reschedule legal.
	ok, err := r.IsArtistAvailableExcluding(ctx, "artist-1", monday, "12:00", "14:00", "b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("reschedule overlapping only its own reservation should be available")
	}

	ok, err = r.IsArtistAvailable(ctx, "artist-1", monday, "12:00", "14:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("without the exclusion the same interval must conflict")
	}
}

func TestIsArtistAvailableUnknownArtist(t *testing.T) {
	r := newTestResolver(weeklyMondaySchedule(), nil)
	if _, err := r.IsArtistAvailable(context.Background(), "ghost", monday, "11:00", "12:00"); err == nil {
		t.Error("expected error for unknown artist")
	}
}

func TestOpenIntervals(t *testing.T) {
	schedule := weeklyMondaySchedule() // 10:00-18:00
	bookings := []models.Booking{
		{ID: "b1", ArtistID: "artist-1", Date: monday, StartTime: "11:00", EndTime: "12:00", Status: models.BookingStatusConfirmed},
		{ID: "b2", ArtistID: "artist-1", Date: monday, StartTime: "14:00", EndTime: "16:00", Status: models.BookingStatusPending},
	}
	r := newTestResolver(schedule, bookings)

	slots, err := r.OpenIntervals(context.Background(), "artist-1", monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.TimeSlot{
		{Start: "10:00", End: "11:00"},
		{Start: "12:00", End: "14:00"},
		{Start: "16:00", End: "18:00"},
	}
	if len(slots) != len(want) {
		t.Fatalf("got %d open intervals, want %d: %+v", len(slots), len(want), slots)
	}
	for i := range want {
		if slots[i].Start != want[i].Start || slots[i].End != want[i].End {
			t.Errorf("interval %d = %s-%s, want %s-%s", i, slots[i].Start, slots[i].End, want[i].Start, want[i].End)
		}
	}
}

func TestOpenIntervalsClosedDay(t *testing.T) {
	r := newTestResolver(weeklyMondaySchedule(), nil)
	slots, err := r.OpenIntervals(context.Background(), "artist-1", "2026-01-06")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no open intervals on a closed day, got %+v", slots)
	}
}
