package artist

import (
	"context"
	"fmt"
	"time"

	"inkwell/models"
	"inkwell/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// updatableArtistFields is the whitelist of fields artists may patch directly.
// Rating fields and the schedule have dedicated paths.
var updatableArtistFields = map[string]bool{
	"name":            true,
	"bio":             true,
	"styles":          true,
	"hourly_rate":     true,
	"deposit_percent": true,
}

// GetArtist fetches the full artist record, credentials included. Owner and
// admin use only.
func (s *DefaultArtistService) GetArtist(id string) (*models.Artist, error) {
	a, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("GetArtist: failed to fetch artist", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch artist: %w", err)
	}
	if a == nil {
		return nil, fmt.Errorf("artist %s not found", id)
	}
	return a, nil
}

// GetArtistProfile fetches the public view of an artist.
func (s *DefaultArtistService) GetArtistProfile(id string) (*models.ArtistDTO, error) {
	a, err := s.GetArtist(id)
	if err != nil {
		return nil, err
	}
	dto := a.PublicView()
	return &dto, nil
}

// UpdateArtist applies a whitelisted patch and returns the updated record.
func (s *DefaultArtistService) UpdateArtist(id string, updates map[string]interface{}) (*models.Artist, error) {
	updateDoc := bson.M{}
	for field, value := range updates {
		if !updatableArtistFields[field] {
			return nil, fmt.Errorf("field %q cannot be updated", field)
		}
		updateDoc[field] = value
	}
	if len(updateDoc) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}
	updateDoc["updated_at"] = time.Now()

	if err := s.Repo.UpdateSetDocument(id, updateDoc); err != nil {
		return nil, fmt.Errorf("failed to update artist: %w", err)
	}
	return s.GetArtist(id)
}

// DeleteArtist removes the account and revokes its session.
func (s *DefaultArtistService) DeleteArtist(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete artist: %w", err)
	}
	if err := s.Logout(id); err != nil {
		utils.GetLogger().Warn("DeleteArtist: failed to revoke session", zap.String("artistID", id), zap.Error(err))
	}
	return nil
}

// ListArtists returns public views of every artist.
func (s *DefaultArtistService) ListArtists() ([]models.ArtistDTO, error) {
	artists, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	dtos := make([]models.ArtistDTO, 0, len(artists))
	for i := range artists {
		dtos = append(dtos, artists[i].PublicView())
	}
	return dtos, nil
}

// SearchByStyle returns public views of artists matching a tattoo style.
func (s *DefaultArtistService) SearchByStyle(style string, limit int64) ([]models.ArtistDTO, error) {
	if style == "" {
		return nil, fmt.Errorf("style is required")
	}
	artists, err := s.Repo.SearchByStyle(style, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search artists: %w", err)
	}
	dtos := make([]models.ArtistDTO, 0, len(artists))
	for i := range artists {
		dtos = append(dtos, artists[i].PublicView())
	}
	return dtos, nil
}

// UpdateFCMToken stores the device push token used for notifications.
func (s *DefaultArtistService) UpdateFCMToken(id, token string) error {
	if err := s.Repo.UpdateSetDocument(id, bson.M{"fcm_token": token, "updated_at": time.Now()}); err != nil {
		return fmt.Errorf("failed to update push token: %w", err)
	}
	return nil
}

// AddPortfolioImage uploads an image and appends its public URL to the
// artist's portfolio.
func (s *DefaultArtistService) AddPortfolioImage(ctx context.Context, id, source string) (string, error) {
	a, err := s.GetArtist(id)
	if err != nil {
		return "", err
	}

	publicID, err := s.Storage.UploadFile(ctx, source, "portfolio")
	if err != nil {
		return "", fmt.Errorf("failed to upload portfolio image: %w", err)
	}
	url, err := s.Storage.GetDownloadURL(ctx, "image", publicID, 0)
	if err != nil {
		return "", fmt.Errorf("failed to resolve portfolio image URL: %w", err)
	}

	urls := append(a.PortfolioURLs, url)
	if err := s.Repo.UpdateSetDocument(id, bson.M{"portfolio_urls": urls, "updated_at": time.Now()}); err != nil {
		return "", fmt.Errorf("failed to update portfolio: %w", err)
	}
	return url, nil
}
