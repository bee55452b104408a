package handlers

import (
	"net/http"

	"inkwell/models"
	"inkwell/services/booking"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking lifecycle endpoints.
type BookingHandler struct {
	BookingService booking.BookingService
}

// bookingErrorStatus maps service error codes to HTTP statuses.
func bookingErrorStatus(err error) int {
	switch {
	case booking.HasCode(err, booking.CodeNotFound):
		return http.StatusNotFound
	case booking.HasCode(err, booking.CodeSchedulingConflict):
		return http.StatusConflict
	case booking.HasCode(err, booking.CodeInvalidState):
		return http.StatusConflict
	case booking.HasCode(err, booking.CodeAlreadyRated):
		return http.StatusConflict
	case booking.HasCode(err, booking.CodeExternalFailure):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	clientID, ok := requireContextString(c, "userID")
	if !ok {
		return
	}

	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.ClientID = clientID

	b, err := h.BookingService.CreateBooking(c.Request.Context(), input)
	if err != nil {
		status := bookingErrorStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Booking creation failed", zap.Error(err))
			c.JSON(status, gin.H{"error": "booking creation failed"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.BookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBookingHandler handles PATCH /api/bookings/:id. It covers both
// reschedules and status transitions.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var updates models.BookingUpdates
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.BookingService.UpdateBooking(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	if err := h.BookingService.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}

// AddBookingMessageHandler handles POST /api/bookings/:id/messages.
func (h *BookingHandler) AddBookingMessageHandler(c *gin.Context) {
	authorID, ok := contextString(c, "userID")
	if !ok {
		authorID, ok = contextString(c, "artistID")
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	msg, err := h.BookingService.AddBookingMessage(c.Request.Context(), c.Param("id"), authorID, input.Text)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// AddBookingRatingHandler handles POST /api/bookings/:id/rating.
func (h *BookingHandler) AddBookingRatingHandler(c *gin.Context) {
	var input struct {
		Stars   int    `json:"stars" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	rating, err := h.BookingService.AddBookingRating(c.Request.Context(), c.Param("id"), input.Stars, input.Comment)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rating)
}

// ListClientBookingsHandler handles GET /api/bookings (authenticated client).
func (h *BookingHandler) ListClientBookingsHandler(c *gin.Context) {
	clientID, ok := requireContextString(c, "userID")
	if !ok {
		return
	}

	limit, after := pagination(c)
	items, err := h.BookingService.ListClientBookings(c.Request.Context(), clientID, limit, after)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": items})
}

// ListArtistBookingsHandler handles GET /api/artists/me/bookings.
func (h *BookingHandler) ListArtistBookingsHandler(c *gin.Context) {
	artistID, ok := requireContextString(c, "artistID")
	if !ok {
		return
	}

	limit, after := pagination(c)
	items, err := h.BookingService.ListArtistBookings(c.Request.Context(), artistID, limit, after)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": items})
}
