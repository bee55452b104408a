package notification

import (
	"context"
	"fmt"
	"time"

	"inkwell/models"
	"inkwell/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DispatchBookingEvent derives titles and bodies from the static event table
// and writes one record per party. By the time this runs the booking mutation
// has already committed, so record failures are reported but nothing is rolled
// back.
func (s *DefaultNotificationService) DispatchBookingEvent(ctx context.Context, booking *models.Booking, eventType string) error {
	logger := utils.GetLogger()

	title, clientBody, artistBody, err := renderEvent(eventType, booking)
	if err != nil {
		return err
	}

	data := map[string]string{
		"bookingId": booking.ID,
		"type":      eventType,
	}

	clientNote := &models.Notification{
		ID:          uuid.New().String(),
		RecipientID: booking.ClientID,
		Recipient:   models.RoleClient,
		Type:        eventType,
		Title:       title,
		Body:        clientBody,
		Data:        data,
	}
	artistNote := &models.Notification{
		ID:          uuid.New().String(),
		RecipientID: booking.ArtistID,
		Recipient:   models.RoleArtist,
		Type:        eventType,
		Title:       title,
		Body:        artistBody,
		Data:        data,
	}

	var firstErr error
	if err := s.Repo.Create(clientNote); err != nil {
		firstErr = fmt.Errorf("failed to record client notification: %w", err)
	}
	if err := s.Repo.Create(artistNote); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to record artist notification: %w", err)
	}

	// Pushes are fire-and-forget; a missing token or FCM outage only gets logged.
	if token := s.clientToken(booking.ClientID); token != "" {
		s.push(ctx, token, title, clientBody, data)
	}
	if token := s.artistToken(booking.ArtistID); token != "" {
		s.push(ctx, token, title, artistBody, data)
	}

	if firstErr != nil {
		logger.Warn("notification dispatch incomplete",
			zap.String("bookingID", booking.ID), zap.String("event", eventType), zap.Error(firstErr))
	}
	return firstErr
}

func (s *DefaultNotificationService) clientToken(userID string) string {
	u, err := s.Users.GetByID(userID)
	if err != nil || u == nil {
		return ""
	}
	return u.FCMToken
}

func (s *DefaultNotificationService) artistToken(artistID string) string {
	a, err := s.Artists.GetByID(artistID)
	if err != nil || a == nil {
		return ""
	}
	return a.FCMToken
}

func (s *DefaultNotificationService) push(ctx context.Context, token, title, body string, data map[string]string) {
	if utils.FCMClient == nil {
		return
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	pushCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := utils.FCMClient.Send(pushCtx, msg); err != nil {
		utils.GetLogger().Warn("failed to send FCM push", zap.Error(err))
	}
}

// ListForRecipient returns a recipient's notifications, newest first.
func (s *DefaultNotificationService) ListForRecipient(ctx context.Context, recipientID string, limit int64, afterID string) ([]models.Notification, error) {
	return s.Repo.ListByRecipient(recipientID, limit, afterID)
}

// MarkRead flags a notification as read.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, id string) error {
	return s.Repo.MarkRead(id)
}
