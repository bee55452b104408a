package handlers

import (
	"net/http"

	"inkwell/services/payment"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes deposit and credit purchase endpoints.
type PaymentHandler struct {
	PaymentService payment.PaymentService
}

// PayDepositHandler handles POST /api/payments/deposit.
func (h *PaymentHandler) PayDepositHandler(c *gin.Context) {
	logger := utils.GetLogger()

	if _, ok := requireContextString(c, "userID"); !ok {
		return
	}

	var input struct {
		BookingID       string `json:"bookingId" binding:"required"`
		PaymentMethodID string `json:"paymentMethodId" binding:"required"`
		Email           string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.PaymentService.PayDeposit(c.Request.Context(), input.BookingID, input.Email, input.PaymentMethodID)
	if err != nil {
		logger.Error("Deposit payment failed", zap.String("bookingID", input.BookingID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if !result.Success {
		c.JSON(http.StatusPaymentRequired, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PurchaseCreditsHandler handles POST /api/payments/credits.
func (h *PaymentHandler) PurchaseCreditsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, ok := requireContextString(c, "userID")
	if !ok {
		return
	}

	var input struct {
		Packs           int    `json:"packs" binding:"required"`
		PaymentMethodID string `json:"paymentMethodId" binding:"required"`
		Email           string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.PaymentService.PurchaseCredits(c.Request.Context(), userID, input.Email, input.PaymentMethodID, input.Packs)
	if err != nil {
		logger.Error("Credit purchase failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if !result.Success {
		c.JSON(http.StatusPaymentRequired, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
