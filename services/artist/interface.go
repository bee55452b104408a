package artist

import (
	"context"

	artistRepo "inkwell/database/repository/artist"
	"inkwell/models"
	"inkwell/services/storage"
)

// RegisterInput carries the fields needed to create an artist account.
type RegisterInput struct {
	Email          string   `json:"email" binding:"required,email"`
	Name           string   `json:"name" binding:"required"`
	Password       string   `json:"password" binding:"required"`
	Bio            string   `json:"bio"`
	Styles         []string `json:"styles"`
	HourlyRate     float64  `json:"hourlyRate" binding:"required"`
	DepositPercent float64  `json:"depositPercent"`
}

// AuthResponse is returned on successful registration or sign-in.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ArtistService manages artist accounts, profiles, and schedules.
type ArtistService interface {
	Register(input RegisterInput) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	Logout(artistID string) error

	GetArtist(id string) (*models.Artist, error)
	GetArtistProfile(id string) (*models.ArtistDTO, error)
	UpdateArtist(id string, updates map[string]interface{}) (*models.Artist, error)
	DeleteArtist(id string) error
	ListArtists() ([]models.ArtistDTO, error)
	SearchByStyle(style string, limit int64) ([]models.ArtistDTO, error)
	UpdateFCMToken(id, token string) error

	// SetSchedule validates and replaces the artist's availability schedule.
	SetSchedule(id string, schedule models.AvailabilitySchedule) error

	// AddPortfolioImage uploads an image and appends its URL to the
	// artist's portfolio.
	AddPortfolioImage(ctx context.Context, id, source string) (string, error)
}

// DefaultArtistService implements ArtistService.
type DefaultArtistService struct {
	Repo    artistRepo.ArtistRepository
	Storage storage.StorageService
}
