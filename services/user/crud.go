package user

import (
	"fmt"
	"time"

	"inkwell/models"
	"inkwell/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// updatableUserFields is the whitelist of fields clients may patch directly.
var updatableUserFields = map[string]bool{
	"name": true,
}

// GetUser fetches one user record.
func (s *DefaultUserService) GetUser(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("GetUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("user %s not found", id)
	}
	return u, nil
}

// UpdateUser applies a whitelisted patch and returns the updated record.
func (s *DefaultUserService) UpdateUser(id string, updates map[string]interface{}) (*models.User, error) {
	updateDoc := bson.M{}
	for field, value := range updates {
		if !updatableUserFields[field] {
			return nil, fmt.Errorf("field %q cannot be updated", field)
		}
		updateDoc[field] = value
	}
	if len(updateDoc) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}
	updateDoc["updated_at"] = time.Now()

	if err := s.Repo.UpdateSetDocument(id, updateDoc); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.GetUser(id)
}

// DeleteUser removes the account and revokes its session.
func (s *DefaultUserService) DeleteUser(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if err := s.Logout(id); err != nil {
		utils.GetLogger().Warn("DeleteUser: failed to revoke session", zap.String("userID", id), zap.Error(err))
	}
	return nil
}

// UpdateFCMToken stores the device push token used for notifications.
func (s *DefaultUserService) UpdateFCMToken(id, token string) error {
	if err := s.Repo.UpdateSetDocument(id, bson.M{"fcm_token": token, "updated_at": time.Now()}); err != nil {
		return fmt.Errorf("failed to update push token: %w", err)
	}
	return nil
}

// ListCreditHistory returns the user's credit transactions, newest first.
func (s *DefaultUserService) ListCreditHistory(userID string, limit int64, afterID string) ([]models.CreditTransaction, error) {
	return s.Credits.ListByUser(userID, limit, afterID)
}
