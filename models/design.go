package models

import "time"

// Design is a record of one AI-generated tattoo design.
type Design struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	Prompt    string    `bson:"prompt" json:"prompt"`
	Style     string    `bson:"style,omitempty" json:"style,omitempty"`
	Placement string    `bson:"placement,omitempty" json:"placement,omitempty"`
	Color     bool      `bson:"color" json:"color"`
	ImageURL  string    `bson:"image_url" json:"imageUrl"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// DesignRequest is the payload for a design generation call.
type DesignRequest struct {
	Prompt    string `json:"prompt" binding:"required"`
	Style     string `json:"style,omitempty"`
	Placement string `json:"placement,omitempty"`
	Color     bool   `json:"color,omitempty"`
}
