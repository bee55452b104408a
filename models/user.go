package models

import (
	"fmt"
	"time"
)

// Role is a closed set of account roles. Operations that require a specific
// role switch exhaustively over this type.
type Role string

const (
	RoleClient Role = "client"
	RoleArtist Role = "artist"
	RoleAdmin  Role = "admin"
)

// ParseRole validates a raw role string against the closed set.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleClient, RoleArtist, RoleAdmin:
		return Role(raw), nil
	}
	return "", fmt.Errorf("unknown role %q", raw)
}

// User represents a client account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	Credits      int       `bson:"credits" json:"credits"` // balance spent on AI design generation
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
