package user

import (
	creditRepo "inkwell/database/repository/credit"
	userRepo "inkwell/database/repository/user"
	"inkwell/models"
)

// RegisterInput carries the fields needed to create a client account.
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful registration or sign-in.
type AuthResponse struct {
	ID      string      `json:"id"`
	Token   string      `json:"token"`
	Email   string      `json:"email"`
	Name    string      `json:"name"`
	Role    models.Role `json:"role"`
	Credits int         `json:"credits"`
}

// UserService manages client accounts and sessions.
type UserService interface {
	Register(input RegisterInput) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	Logout(userID string) error

	GetUser(id string) (*models.User, error)
	UpdateUser(id string, updates map[string]interface{}) (*models.User, error)
	DeleteUser(id string) error
	UpdateFCMToken(id, token string) error
	ListCreditHistory(userID string, limit int64, afterID string) ([]models.CreditTransaction, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo    userRepo.UserRepository
	Credits creditRepo.CreditRepository
}
