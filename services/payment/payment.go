package payment

import (
	"context"
	"fmt"
	"math"

	"inkwell/models"
	"inkwell/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// Charge creates and confirms a PaymentIntent in one call. Card declines
// surface in the result; only gateway-level failures return an error.
func (s *DefaultPaymentService) Charge(ctx context.Context, req models.PaymentRequest, paymentMethodID string) (*models.PaymentResult, error) {
	logger := utils.GetLogger()

	if req.Amount <= 0 {
		return nil, fmt.Errorf("charge amount must be positive")
	}
	currency := req.Currency
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(toCents(req.Amount)),
		Currency:      stripe.String(currency),
		PaymentMethod: stripe.String(paymentMethodID),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String(string(stripe.PaymentIntentAutomaticPaymentMethodsAllowRedirectsNever)),
		},
	}
	if req.Email != "" {
		params.ReceiptEmail = stripe.String(req.Email)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		if stripeErr, ok := err.(*stripe.Error); ok {
			logger.Warn("charge declined",
				zap.String("userID", req.UserID), zap.String("code", string(stripeErr.Code)))
			return &models.PaymentResult{Success: false, Error: stripeErr.Msg}, nil
		}
		return nil, fmt.Errorf("failed to reach payment gateway: %w", err)
	}

	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return &models.PaymentResult{
			Success:       false,
			TransactionID: pi.ID,
			Error:         fmt.Sprintf("payment not completed: %s", pi.Status),
		}, nil
	}

	logger.Info("charge succeeded",
		zap.String("userID", req.UserID), zap.String("transactionID", pi.ID))
	return &models.PaymentResult{Success: true, TransactionID: pi.ID}, nil
}

// PayDeposit charges a booking's deposit and marks it paid on success. The
// booking state change happens after the charge; a failure there is returned
// to the caller with the charge already committed, matching the gateway's
// record of truth.
func (s *DefaultPaymentService) PayDeposit(ctx context.Context, bookingID, email, paymentMethodID string) (*models.PaymentResult, error) {
	b, err := s.Bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.DepositPaid {
		return nil, fmt.Errorf("deposit already paid for booking %s", bookingID)
	}
	if b.Deposit <= 0 {
		return nil, fmt.Errorf("booking %s has no deposit due", bookingID)
	}

	result, err := s.Charge(ctx, models.PaymentRequest{
		UserID:   b.ClientID,
		Email:    email,
		Amount:   b.Deposit,
		Currency: string(stripe.CurrencyUSD),
	}, paymentMethodID)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return result, nil
	}

	if _, err := s.Bookings.MarkDepositPaid(ctx, bookingID, result.TransactionID); err != nil {
		return result, fmt.Errorf("charge %s succeeded but booking update failed: %w", result.TransactionID, err)
	}
	return result, nil
}

// PurchaseCredits charges for credit packs and tops up the user's balance.
func (s *DefaultPaymentService) PurchaseCredits(ctx context.Context, userID, email, paymentMethodID string, packs int) (*models.PaymentResult, error) {
	logger := utils.GetLogger()

	if packs <= 0 {
		return nil, fmt.Errorf("pack count must be positive")
	}
	u, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}

	result, err := s.Charge(ctx, models.PaymentRequest{
		UserID:   userID,
		Email:    email,
		Amount:   CreditPackPrice * float64(packs),
		Currency: string(stripe.CurrencyUSD),
	}, paymentMethodID)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return result, nil
	}

	credits := CreditPackSize * packs
	if err := s.Users.AdjustCredits(userID, credits); err != nil {
		return result, fmt.Errorf("charge %s succeeded but credit top-up failed: %w", result.TransactionID, err)
	}

	tx := &models.CreditTransaction{
		ID:            uuid.New().String(),
		UserID:        userID,
		Delta:         credits,
		Reason:        "credit pack purchase",
		TransactionID: result.TransactionID,
	}
	if err := s.Credits.Create(tx); err != nil {
		logger.Error("failed to record credit transaction",
			zap.String("userID", userID), zap.Error(err))
	}
	return result, nil
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
