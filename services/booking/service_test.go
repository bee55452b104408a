package booking

import (
	"context"
	"fmt"
	"testing"

	artistRepo "inkwell/database/repository/artist"
	bookingRepo "inkwell/database/repository/booking"
	"inkwell/models"
	"inkwell/services/availability"
	"inkwell/services/notification"

	"go.mongodb.org/mongo-driver/bson"
)

// 2026-01-05 is a Monday.
const monday = "2026-01-05"

type memoryBookingRepo struct {
	bookings map[string]*models.Booking
}

func newMemoryBookingRepo() *memoryBookingRepo {
	return &memoryBookingRepo{bookings: make(map[string]*models.Booking)}
}

func isActive(status string) bool {
	for _, s := range models.ActiveBookingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (m *memoryBookingRepo) CreateIfSlotFree(ctx context.Context, b *models.Booking) error {
	for _, existing := range m.bookings {
		if existing.ArtistID != b.ArtistID || existing.Date != b.Date || !isActive(existing.Status) {
			continue
		}
		// Zero-padded clock strings order lexicographically.
		if existing.StartTime < b.EndTime && b.StartTime < existing.EndTime {
			return bookingRepo.ErrSlotTaken
		}
	}
	cp := *b
	m.bookings[b.ID] = &cp
	return nil
}

func (m *memoryBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (m *memoryBookingRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	b, ok := m.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	for key, value := range updateDoc {
		switch key {
		case "status":
			b.Status = value.(string)
		case "deposit_paid":
			b.DepositPaid = value.(bool)
		case "date":
			b.Date = value.(string)
		case "start_time":
			b.StartTime = value.(string)
		case "end_time":
			b.EndTime = value.(string)
		case "duration_hours":
			b.DurationHours = value.(float64)
		case "price":
			b.Price = value.(float64)
		case "deposit":
			b.Deposit = value.(float64)
		}
	}
	return nil
}

func (m *memoryBookingRepo) Delete(id string) error {
	if _, ok := m.bookings[id]; !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	delete(m.bookings, id)
	return nil
}

func (m *memoryBookingRepo) GetActiveByArtistDate(artistID, date, excludeBookingID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.ArtistID != artistID || b.Date != date || !isActive(b.Status) {
			continue
		}
		if excludeBookingID != "" && b.ID == excludeBookingID {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (m *memoryBookingRepo) ListByArtist(artistID string, limit int64, afterID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.ArtistID == artistID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memoryBookingRepo) ListByClient(clientID string, limit int64, afterID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.ClientID == clientID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memoryBookingRepo) AppendMessage(id string, msg models.BookingMessage) error {
	b, ok := m.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	b.Messages = append(b.Messages, msg)
	return nil
}

func (m *memoryBookingRepo) SetRating(id string, rating models.BookingRating) error {
	b, ok := m.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	if b.Rating != nil {
		return fmt.Errorf("booking %s already rated", id)
	}
	b.Rating = &rating
	return nil
}

type memoryArtistRepo struct {
	artist       *models.Artist
	ratedStars   []int
	ratedArtists []string
}

func (m *memoryArtistRepo) Create(*models.Artist) error                           { return nil }
func (m *memoryArtistRepo) Update(*models.Artist) error                           { return nil }
func (m *memoryArtistRepo) UpdateSetDocument(string, bson.M) error                { return nil }
func (m *memoryArtistRepo) Delete(string) error                                   { return nil }
func (m *memoryArtistRepo) GetByEmail(string) (*models.Artist, error)             { return nil, nil }
func (m *memoryArtistRepo) GetAll() ([]models.Artist, error)                      { return nil, nil }
func (m *memoryArtistRepo) SearchByStyle(string, int64) ([]models.Artist, error)  { return nil, nil }
func (m *memoryArtistRepo) SetSchedule(string, models.AvailabilitySchedule) error { return nil }

func (m *memoryArtistRepo) GetByID(id string) (*models.Artist, error) {
	if m.artist != nil && m.artist.ID == id {
		return m.artist, nil
	}
	return nil, nil
}

func (m *memoryArtistRepo) ApplyRating(id string, stars int) error {
	m.ratedArtists = append(m.ratedArtists, id)
	m.ratedStars = append(m.ratedStars, stars)
	if m.artist != nil && m.artist.ID == id {
		m.artist.Rating, m.artist.TotalRatings = artistRepo.FoldRating(m.artist.Rating, m.artist.TotalRatings, stars)
	}
	return nil
}

type recordingNotifier struct {
	events []string
}

func (r *recordingNotifier) DispatchBookingEvent(ctx context.Context, b *models.Booking, eventType string) error {
	r.events = append(r.events, eventType)
	return nil
}

func (r *recordingNotifier) ListForRecipient(context.Context, string, int64, string) ([]models.Notification, error) {
	return nil, nil
}

func (r *recordingNotifier) MarkRead(context.Context, string) error { return nil }

type recordingScheduler struct {
	scheduled []string
}

func (r *recordingScheduler) ScheduleBookingReminder(ctx context.Context, b *models.Booking) error {
	r.scheduled = append(r.scheduled, b.ID)
	return nil
}

type fixture struct {
	svc       *DefaultBookingService
	repo      *memoryBookingRepo
	artists   *memoryArtistRepo
	notifier  *recordingNotifier
	scheduler *recordingScheduler
}

func newFixture() *fixture {
	artists := &memoryArtistRepo{artist: &models.Artist{
		ID:             "artist-1",
		HourlyRate:     100,
		DepositPercent: 0.25,
		Schedule: models.AvailabilitySchedule{
			Weekly: map[string]models.DayHours{
				"Monday": {Available: true, Start: "09:00", End: "18:00"},
			},
		},
	}}
	repo := newMemoryBookingRepo()
	notifier := &recordingNotifier{}
	scheduler := &recordingScheduler{}

	svc := &DefaultBookingService{
		Repo:       repo,
		ArtistRepo: artists,
		Resolver: &availability.DefaultResolver{
			ArtistRepo:  artists,
			BookingRepo: repo,
		},
		NotificationSvc: notifier,
		Reminders:       scheduler,
	}
	return &fixture{svc: svc, repo: repo, artists: artists, notifier: notifier, scheduler: scheduler}
}

func (f *fixture) create(t *testing.T, start, end string) *models.Booking {
	t.Helper()
	b, err := f.svc.CreateBooking(context.Background(), CreateBookingInput{
		ArtistID:  "artist-1",
		ClientID:  "client-1",
		Date:      monday,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		t.Fatalf("CreateBooking(%s-%s): %v", start, end, err)
	}
	return b
}

func lastEvent(events []string) string {
	if len(events) == 0 {
		return ""
	}
	return events[len(events)-1]
}

func TestCreateBookingPricing(t *testing.T) {
	f := newFixture()
	b := f.create(t, "10:00", "12:30")

	if b.Status != models.BookingStatusPending {
		t.Errorf("new booking status = %s, want pending", b.Status)
	}
	if b.DurationHours != 2.5 {
		t.Errorf("duration = %v hours, want 2.5", b.DurationHours)
	}
	if b.Price != 250 {
		t.Errorf("price = %v, want 250", b.Price)
	}
	if b.Deposit != 62.5 {
		t.Errorf("deposit = %v, want 62.5", b.Deposit)
	}
	if lastEvent(f.notifier.events) != notification.EventBookingCreated {
		t.Errorf("expected booking_created event, got %v", f.notifier.events)
	}
}

func TestCreateBookingDoubleBook(t *testing.T) {
	f := newFixture()
	f.create(t, "10:00", "12:00")

	_, err := f.svc.CreateBooking(context.Background(), CreateBookingInput{
		ArtistID:  "artist-1",
		ClientID:  "client-2",
		Date:      monday,
		StartTime: "11:00",
		EndTime:   "13:00",
	})
	if !HasCode(err, CodeSchedulingConflict) {
		t.Fatalf("expected scheduling conflict, got %v", err)
	}

	// Back-to-back is fine.
	f.create(t, "12:00", "13:00")
}

func TestCreateBookingOutsideWindow(t *testing.T) {
	f := newFixture()
	_, err := f.svc.CreateBooking(context.Background(), CreateBookingInput{
		ArtistID:  "artist-1",
		ClientID:  "client-1",
		Date:      monday,
		StartTime: "17:00",
		EndTime:   "19:00",
	})
	if !HasCode(err, CodeSchedulingConflict) {
		t.Fatalf("expected scheduling conflict for interval past window end, got %v", err)
	}
}

func TestCreateBookingInvalidInterval(t *testing.T) {
	f := newFixture()
	_, err := f.svc.CreateBooking(context.Background(), CreateBookingInput{
		ArtistID:  "artist-1",
		ClientID:  "client-1",
		Date:      monday,
		StartTime: "12:00",
		EndTime:   "12:00",
	})
	if !HasCode(err, CodeSchedulingConflict) {
		t.Fatalf("expected scheduling conflict for empty interval, got %v", err)
	}
}

func TestCreateBookingUnknownArtist(t *testing.T) {
	f := newFixture()
	_, err := f.svc.CreateBooking(context.Background(), CreateBookingInput{
		ArtistID:  "ghost",
		ClientID:  "client-1",
		Date:      monday,
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	if err == nil {
		t.Fatal("expected error for unknown artist")
	}
}

func TestUpdateBookingStatusFlow(t *testing.T) {
	f := newFixture()
	b := f.create(t, "10:00", "12:00")
	ctx := context.Background()

	confirmed := models.BookingStatusConfirmed
	updated, err := f.svc.UpdateBooking(ctx, b.ID, models.BookingUpdates{Status: &confirmed})
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if updated.Status != models.BookingStatusConfirmed {
		t.Errorf("status = %s, want confirmed", updated.Status)
	}
	if lastEvent(f.notifier.events) != notification.EventBookingConfirmed {
		t.Errorf("expected booking_confirmed event, got %v", f.notifier.events)
	}
	if len(f.scheduler.scheduled) != 1 || f.scheduler.scheduled[0] != b.ID {
		t.Errorf("expected one reminder for %s, got %v", b.ID, f.scheduler.scheduled)
	}

	// Confirmed bookings cannot go back to pending.
	pending := models.BookingStatusPending
	if _, err := f.svc.UpdateBooking(ctx, b.ID, models.BookingUpdates{Status: &pending}); !HasCode(err, CodeInvalidState) {
		t.Fatalf("expected invalid state for confirmed->pending, got %v", err)
	}

	completed := models.BookingStatusCompleted
	if _, err := f.svc.UpdateBooking(ctx, b.ID, models.BookingUpdates{Status: &completed}); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// Terminal.
	cancelled := models.BookingStatusCancelled
	if _, err := f.svc.UpdateBooking(ctx, b.ID, models.BookingUpdates{Status: &cancelled}); !HasCode(err, CodeInvalidState) {
		t.Fatalf("expected invalid state for completed->cancelled, got %v", err)
	}
}

func TestUpdateBookingAcceptedAlias(t *testing.T) {
	f := newFixture()
	b := f.create(t, "10:00", "12:00")

	accepted := "accepted"
	updated, err := f.svc.UpdateBooking(context.Background(), b.ID, models.BookingUpdates{Status: &accepted})
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if updated.Status != models.BookingStatusConfirmed {
		t.Errorf("accepted should store as confirmed, got %s", updated.Status)
	}
}

func TestUpdateBookingReschedule(t *testing.T) {
	f := newFixture()
	b := f.create(t, "10:00", "12:00")
	ctx := context.Background()

	// Shift by an hour: overlaps only its own reservation.
	newStart, newEnd := "11:00", "13:00"
	updated, err := f.svc.UpdateBooking(ctx, b.ID, models.BookingUpdates{StartTime: &newStart, EndTime: &newEnd})
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if updated.StartTime != "11:00" || updated.EndTime != "13:00" {
		t.Errorf("reschedule not applied: %s-%s", updated.StartTime, updated.EndTime)
	}
	if updated.DurationHours != 2 {
		t.Errorf("duration after reschedule = %v, want 2", updated.DurationHours)
	}

	// A second booking now blocks that interval for others.
	_, err = f.svc.CreateBooking(ctx, CreateBookingInput{
		ArtistID:  "artist-1",
		ClientID:  "client-2",
		Date:      monday,
		StartTime: "12:00",
		EndTime:   "14:00",
	})
	if !HasCode(err, CodeSchedulingConflict) {
		t.Fatalf("expected conflict with rescheduled booking, got %v", err)
	}
}

func TestUpdateBookingRescheduleConflict(t *testing.T) {
	f := newFixture()
	b1 := f.create(t, "10:00", "12:00")
	f.create(t, "13:00", "15:00")

	newStart, newEnd := "14:00", "16:00"
	_, err := f.svc.UpdateBooking(context.Background(), b1.ID, models.BookingUpdates{StartTime: &newStart, EndTime: &newEnd})
	if !HasCode(err, CodeSchedulingConflict) {
		t.Fatalf("expected conflict rescheduling onto another booking, got %v", err)
	}
}

func TestRescheduleKeepsConfirmedBookingReminded(t *testing.T) {
	f := newFixture()
	b := f.create(t, "10:00", "12:00")
	ctx := context.Background()

	confirmed := models.BookingStatusConfirmed
	if _, err := f.svc.UpdateBooking(ctx, b.ID, models.BookingUpdates{Status: &confirmed}); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if len(f.scheduler.scheduled) != 1 {
		t.Fatalf("expected one reminder after confirmation, got %v", f.scheduler.scheduled)
	}

	// Moving the booking invalidates the queued reminder (its fire date no
	// longer matches), so a fresh one must be enqueued.
	newStart, newEnd := "13:00", "15:00"
	if _, err := f.svc.UpdateBooking(ctx, b.ID, models.BookingUpdates{StartTime: &newStart, EndTime: &newEnd}); err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if len(f.scheduler.scheduled) != 2 {
		t.Fatalf("expected a fresh reminder after reschedule, got %v", f.scheduler.scheduled)
	}
	if f.scheduler.scheduled[1] != b.ID {
		t.Errorf("fresh reminder scheduled for %s, want %s", f.scheduler.scheduled[1], b.ID)
	}

	// A reschedule of a still-pending booking enqueues nothing.
	b2 := f.create(t, "15:00", "16:00")
	shifted := "16:00"
	shiftedEnd := "17:00"
	if _, err := f.svc.UpdateBooking(ctx, b2.ID, models.BookingUpdates{StartTime: &shifted, EndTime: &shiftedEnd}); err != nil {
		t.Fatalf("pending reschedule: %v", err)
	}
	if len(f.scheduler.scheduled) != 2 {
		t.Errorf("pending reschedule should not enqueue a reminder, got %v", f.scheduler.scheduled)
	}
}

func TestRescheduleRecomputesPrice(t *testing.T) {
	f := newFixture()
	b := f.create(t, "10:00", "12:00")
	if b.Price != 200 || b.Deposit != 50 {
		t.Fatalf("create: price/deposit = %v/%v, want 200/50", b.Price, b.Deposit)
	}

	newEnd := "13:00"
	updated, err := f.svc.UpdateBooking(context.Background(), b.ID, models.BookingUpdates{EndTime: &newEnd})
	if err != nil {
		t.Fatalf("extend: %v", err)
	}
	if updated.Price != 300 || updated.Deposit != 75 {
		t.Errorf("extended price/deposit = %v/%v, want 300/75", updated.Price, updated.Deposit)
	}

	stored, _ := f.repo.GetByID(b.ID)
	if stored.Price != 300 || stored.Deposit != 75 {
		t.Errorf("stored price/deposit = %v/%v, want 300/75", stored.Price, stored.Deposit)
	}
}

func TestRescheduleLockedAfterDeposit(t *testing.T) {
	f := newFixture()
	b := f.create(t, "10:00", "12:00")
	ctx := context.Background()

	if _, err := f.svc.MarkDepositPaid(ctx, b.ID, "txn_1"); err != nil {
		t.Fatalf("mark deposit paid: %v", err)
	}

	// Length changes would shift the price out from under the paid deposit.
	newEnd := "13:00"
	if _, err := f.svc.UpdateBooking(ctx, b.ID, models.BookingUpdates{EndTime: &newEnd}); !HasCode(err, CodeInvalidState) {
		t.Fatalf("expected invalid state extending a deposit-paid booking, got %v", err)
	}

	// Same-length moves stay legal.
	newStart, sameLenEnd := "14:00", "16:00"
	updated, err := f.svc.UpdateBooking(ctx, b.ID, models.BookingUpdates{StartTime: &newStart, EndTime: &sameLenEnd})
	if err != nil {
		t.Fatalf("same-length reschedule: %v", err)
	}
	if updated.Price != 200 || updated.Deposit != 50 {
		t.Errorf("price/deposit after move = %v/%v, want unchanged 200/50", updated.Price, updated.Deposit)
	}
}

func TestSequentialRatingsYieldArithmeticMean(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	confirmed := models.BookingStatusConfirmed
	completed := models.BookingStatusCompleted

	slots := [][2]string{{"09:00", "10:00"}, {"10:00", "11:00"}, {"11:00", "12:00"}}
	stars := []int{5, 3, 4}
	for i, slot := range slots {
		b := f.create(t, slot[0], slot[1])
		if _, err := f.svc.UpdateBooking(ctx, b.ID, models.BookingUpdates{Status: &confirmed}); err != nil {
			t.Fatal(err)
		}
		if _, err := f.svc.UpdateBooking(ctx, b.ID, models.BookingUpdates{Status: &completed}); err != nil {
			t.Fatal(err)
		}
		if _, err := f.svc.AddBookingRating(ctx, b.ID, stars[i], ""); err != nil {
			t.Fatalf("rating %d: %v", i, err)
		}

		if i == 0 {
			if f.artists.artist.Rating != 5 || f.artists.artist.TotalRatings != 1 {
				t.Fatalf("after first rating: avg/count = %v/%d, want 5/1",
					f.artists.artist.Rating, f.artists.artist.TotalRatings)
			}
		}
	}

	// (5+3+4)/3
	if f.artists.artist.Rating != 4 {
		t.Errorf("avg = %v, want the arithmetic mean 4", f.artists.artist.Rating)
	}
	if f.artists.artist.TotalRatings != 3 {
		t.Errorf("count = %d, want 3", f.artists.artist.TotalRatings)
	}
}

func TestDeleteBooking(t *testing.T) {
	f := newFixture()
	b := f.create(t, "10:00", "12:00")
	ctx := context.Background()

	if err := f.svc.DeleteBooking(ctx, b.ID); err != nil {
		t.Fatalf("delete pending: %v", err)
	}
	if lastEvent(f.notifier.events) != notification.EventBookingDeleted {
		t.Errorf("expected booking_deleted event, got %v", f.notifier.events)
	}

	b2 := f.create(t, "10:00", "12:00")
	confirmed := models.BookingStatusConfirmed
	if _, err := f.svc.UpdateBooking(ctx, b2.ID, models.BookingUpdates{Status: &confirmed}); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if err := f.svc.DeleteBooking(ctx, b2.ID); !HasCode(err, CodeInvalidState) {
		t.Fatalf("expected invalid state deleting a confirmed booking, got %v", err)
	}

	if err := f.svc.DeleteBooking(ctx, "missing"); !HasCode(err, CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMarkDepositPaid(t *testing.T) {
	f := newFixture()
	b := f.create(t, "10:00", "12:00")
	ctx := context.Background()

	updated, err := f.svc.MarkDepositPaid(ctx, b.ID, "txn_1")
	if err != nil {
		t.Fatalf("mark deposit paid: %v", err)
	}
	if !updated.DepositPaid {
		t.Error("deposit should be marked paid")
	}
	if updated.Status != models.BookingStatusConfirmed {
		t.Errorf("paying the deposit should confirm a pending booking, got %s", updated.Status)
	}
	if lastEvent(f.notifier.events) != notification.EventBookingConfirmed {
		t.Errorf("expected booking_confirmed after payment_received, got %v", f.notifier.events)
	}
	if len(f.scheduler.scheduled) != 1 {
		t.Errorf("expected one reminder, got %v", f.scheduler.scheduled)
	}

	// Paying again on an already-confirmed booking must not re-confirm.
	before := len(f.notifier.events)
	if _, err := f.svc.MarkDepositPaid(ctx, b.ID, "txn_2"); err != nil {
		t.Fatalf("second deposit mark: %v", err)
	}
	newEvents := f.notifier.events[before:]
	for _, e := range newEvents {
		if e == notification.EventBookingConfirmed {
			t.Errorf("already-confirmed booking re-dispatched booking_confirmed: %v", newEvents)
		}
	}
	if len(f.scheduler.scheduled) != 1 {
		t.Errorf("reminder should not be scheduled twice, got %v", f.scheduler.scheduled)
	}
}

func TestAddBookingMessage(t *testing.T) {
	f := newFixture()
	b := f.create(t, "10:00", "12:00")

	msg, err := f.svc.AddBookingMessage(context.Background(), b.ID, "client-1", "can we do a bit earlier?")
	if err != nil {
		t.Fatalf("add message: %v", err)
	}
	if msg.AuthorID != "client-1" {
		t.Errorf("author = %s, want client-1", msg.AuthorID)
	}

	stored, _ := f.repo.GetByID(b.ID)
	if len(stored.Messages) != 1 {
		t.Errorf("expected one stored message, got %d", len(stored.Messages))
	}
}

func TestAddBookingRating(t *testing.T) {
	f := newFixture()
	b := f.create(t, "10:00", "12:00")
	ctx := context.Background()

	// Only completed bookings can be rated.
	if _, err := f.svc.AddBookingRating(ctx, b.ID, 5, "great"); !HasCode(err, CodeInvalidState) {
		t.Fatalf("expected invalid state rating a pending booking, got %v", err)
	}

	confirmed := models.BookingStatusConfirmed
	completed := models.BookingStatusCompleted
	if _, err := f.svc.UpdateBooking(ctx, b.ID, models.BookingUpdates{Status: &confirmed}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.UpdateBooking(ctx, b.ID, models.BookingUpdates{Status: &completed}); err != nil {
		t.Fatal(err)
	}

	if _, err := f.svc.AddBookingRating(ctx, b.ID, 0, ""); !HasCode(err, CodeInvalidState) {
		t.Fatalf("expected invalid state for 0 stars, got %v", err)
	}
	if _, err := f.svc.AddBookingRating(ctx, b.ID, 6, ""); !HasCode(err, CodeInvalidState) {
		t.Fatalf("expected invalid state for 6 stars, got %v", err)
	}

	rating, err := f.svc.AddBookingRating(ctx, b.ID, 4, "solid work")
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if rating.Stars != 4 {
		t.Errorf("stars = %d, want 4", rating.Stars)
	}
	if len(f.artists.ratedStars) != 1 || f.artists.ratedStars[0] != 4 {
		t.Errorf("artist aggregate should receive the stars once, got %v", f.artists.ratedStars)
	}
	if f.artists.ratedArtists[0] != "artist-1" {
		t.Errorf("rating applied to %s, want artist-1", f.artists.ratedArtists[0])
	}

	if _, err := f.svc.AddBookingRating(ctx, b.ID, 5, "again"); !HasCode(err, CodeAlreadyRated) {
		t.Fatalf("expected already rated, got %v", err)
	}
}
