package user

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

// Register creates a new client account and signs it in.
func (s *DefaultUserService) Register(input RegisterInput) (*AuthResponse, error) {
	logger := utils.GetLogger()

	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, fmt.Errorf("all fields are required")
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		logger.Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	userObj := models.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleClient,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Create(&userObj); err != nil {
		logger.Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := s.issueSession(&userObj)
	if err != nil {
		return nil, err
	}
	return authResponse(&userObj, token), nil
}

// Authenticate verifies credentials and issues a fresh session token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		logger.Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := s.issueSession(userRec)
	if err != nil {
		return nil, err
	}
	return authResponse(userRec, token), nil
}

// Logout clears the stored token hash and the cached session so the
// middleware rejects the token on its next use.
func (s *DefaultUserService) Logout(userID string) error {
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"token_hash": ""}); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	client := utils.GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// issueSession generates a token, persists its hash on the account, and
// caches the hash for middleware lookup. Issuing a new token invalidates the
// previous one.
func (s *DefaultUserService) issueSession(u *models.User) (string, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, string(u.Role), TokenTTL)
	if err != nil {
		utils.GetLogger().Error("failed to generate auth token", zap.Error(err))
		return "", fmt.Errorf("sign-in failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateSetDocument(u.ID, bson.M{"token_hash": tokenHash}); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}

	client := utils.GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Set(ctx, utils.AuthCachePrefix+u.ID, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to cache session: %w", err)
	}
	return token, nil
}

func authResponse(u *models.User, token string) *AuthResponse {
	return &AuthResponse{
		ID:      u.ID,
		Token:   token,
		Email:   u.Email,
		Name:    u.Name,
		Role:    u.Role,
		Credits: u.Credits,
	}
}
