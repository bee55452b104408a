package handlers

import (
	"net/http"

	"inkwell/services/availability"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes artist availability lookups.
type AvailabilityHandler struct {
	Resolver availability.Resolver
}

// OpenIntervalsHandler handles GET /api/artists/:id/availability?date=2006-01-02.
func (h *AvailabilityHandler) OpenIntervalsHandler(c *gin.Context) {
	artistID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	slots, err := h.Resolver.OpenIntervals(c.Request.Context(), artistID, date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "open": slots})
}

// CheckAvailabilityHandler handles GET /api/artists/:id/availability/check.
// Query parameters: date, start, end.
func (h *AvailabilityHandler) CheckAvailabilityHandler(c *gin.Context) {
	artistID := c.Param("id")
	date := c.Query("date")
	start := c.Query("start")
	end := c.Query("end")
	if date == "" || start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date, start, and end query parameters are required"})
		return
	}

	startMin, err := availability.ClockToMinutes(start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	endMin, err := availability.ClockToMinutes(end)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if startMin >= endMin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must be before end"})
		return
	}

	ok, err := h.Resolver.IsArtistAvailable(c.Request.Context(), artistID, date, start, end)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": ok})
}
