package artist

import (
	"context"
	"fmt"
	"time"

	"inkwell/models"
	"inkwell/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is how long issued session tokens stay valid.
const TokenTTL = 72 * time.Hour

// DefaultDepositPercent applies when an artist registers without one.
const DefaultDepositPercent = 0.25

// Register creates a new artist account and signs it in.
func (s *DefaultArtistService) Register(input RegisterInput) (*AuthResponse, error) {
	logger := utils.GetLogger()

	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, fmt.Errorf("all fields are required")
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if input.HourlyRate <= 0 {
		return nil, fmt.Errorf("hourly rate must be positive")
	}
	if input.DepositPercent < 0 || input.DepositPercent > 1 {
		return nil, fmt.Errorf("deposit percent must be between 0 and 1")
	}
	if input.DepositPercent == 0 {
		input.DepositPercent = DefaultDepositPercent
	}

	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		logger.Error("Register: failed to check for existing artist", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an artist with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	artistObj := models.Artist{
		ID:             uuid.New().String(),
		Email:          input.Email,
		Name:           input.Name,
		PasswordHash:   string(hashedPassword),
		Bio:            input.Bio,
		Styles:         input.Styles,
		HourlyRate:     input.HourlyRate,
		DepositPercent: input.DepositPercent,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Repo.Create(&artistObj); err != nil {
		logger.Error("Register: failed to create artist", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := s.issueSession(&artistObj)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{ID: artistObj.ID, Token: token, Email: artistObj.Email, Name: artistObj.Name}, nil
}

// Authenticate verifies credentials and issues a fresh session token.
func (s *DefaultArtistService) Authenticate(email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		logger.Error("Authenticate: failed to fetch artist", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := s.issueSession(rec)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{ID: rec.ID, Token: token, Email: rec.Email, Name: rec.Name}, nil
}

// Logout clears the stored token hash and the cached session.
func (s *DefaultArtistService) Logout(artistID string) error {
	if err := s.Repo.UpdateSetDocument(artistID, bson.M{"token_hash": ""}); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	client := utils.GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Del(ctx, utils.AuthCachePrefix+artistID).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func (s *DefaultArtistService) issueSession(a *models.Artist) (string, error) {
	token, err := utils.GenerateToken(a.ID, a.Email, string(models.RoleArtist), TokenTTL)
	if err != nil {
		utils.GetLogger().Error("failed to generate auth token", zap.Error(err))
		return "", fmt.Errorf("sign-in failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateSetDocument(a.ID, bson.M{"token_hash": tokenHash}); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}

	client := utils.GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Set(ctx, utils.AuthCachePrefix+a.ID, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to cache session: %w", err)
	}
	return token, nil
}
