package models

import "time"

// Product is an item in the studio shop (aftercare kits, prints, gift cards).
type Product struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	Currency    string    `bson:"currency" json:"currency"`
	ImageURL    string    `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Stock       int       `bson:"stock" json:"stock"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// Order records a shop purchase.
type Order struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"user_id" json:"userId"`
	ProductID     string    `bson:"product_id" json:"productId"`
	Quantity      int       `bson:"quantity" json:"quantity"`
	Total         float64   `bson:"total" json:"total"`
	Currency      string    `bson:"currency" json:"currency"`
	TransactionID string    `bson:"transaction_id,omitempty" json:"transactionId,omitempty"`
	Status        string    `bson:"status" json:"status"` // "paid" or "failed"
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}
