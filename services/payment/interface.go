package payment

import (
	"context"

	creditRepo "inkwell/database/repository/credit"
	userRepo "inkwell/database/repository/user"
	"inkwell/models"
	"inkwell/services/booking"
)

// CreditPackSize is how many credits one purchase unit buys.
const CreditPackSize = 10

// CreditPackPrice is the price of one credit pack in the default currency.
const CreditPackPrice = 4.99

// PaymentService runs card charges and the flows built on top of them:
// booking deposits and credit pack purchases.
type PaymentService interface {
	// Charge runs a single synchronous charge against the gateway. A failed
	// charge is reported in the result, not as an error; errors mean the
	// gateway could not be reached at all.
	Charge(ctx context.Context, req models.PaymentRequest, paymentMethodID string) (*models.PaymentResult, error)

	// PayDeposit charges the booking's deposit and, on success, marks the
	// deposit paid on the booking (which confirms a pending booking).
	PayDeposit(ctx context.Context, bookingID, email, paymentMethodID string) (*models.PaymentResult, error)

	// PurchaseCredits charges for one or more credit packs and tops up the
	// user's balance, recording a credit transaction.
	PurchaseCredits(ctx context.Context, userID, email, paymentMethodID string, packs int) (*models.PaymentResult, error)
}

// DefaultPaymentService is the Stripe-backed implementation.
type DefaultPaymentService struct {
	Bookings booking.BookingService
	Users    userRepo.UserRepository
	Credits  creditRepo.CreditRepository
}
