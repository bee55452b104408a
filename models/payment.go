package models

import "time"

// PaymentRequest describes a single charge to run against the gateway.
type PaymentRequest struct {
	UserID   string  `json:"userId"`
	Email    string  `json:"email"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// PaymentResult is the immediate outcome of a charge. There is no webhook or
// async confirmation path; success is taken from the gateway response.
type PaymentResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId,omitempty"`
	Error         string `json:"error,omitempty"`
}

// CreditTransaction records a change to a user's credit balance.
type CreditTransaction struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"user_id" json:"userId"`
	Delta         int       `bson:"delta" json:"delta"` // positive for purchases, negative for spends
	Reason        string    `bson:"reason" json:"reason"`
	TransactionID string    `bson:"transaction_id,omitempty" json:"transactionId,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}
