package userRepo

import (
	"inkwell/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines data access for user documents.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)

	// AdjustCredits changes the user's credit balance by delta. A negative
	// delta only applies when the balance covers it; otherwise the update
	// matches nothing and an error is returned.
	AdjustCredits(id string, delta int) error
}
