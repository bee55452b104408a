package handlers

import (
	"net/http"

	"inkwell/models"
	"inkwell/services/artist"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ArtistHandler exposes artist account and profile endpoints.
type ArtistHandler struct {
	ArtistService artist.ArtistService
}

// RegisterArtistHandler handles POST /api/artists/register.
func (h *ArtistHandler) RegisterArtistHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input artist.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.ArtistService.Register(input)
	if err != nil {
		logger.Error("Artist registration failed", zap.String("email", input.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateArtistHandler handles POST /api/artists/login.
func (h *ArtistHandler) AuthenticateArtistHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.ArtistService.Authenticate(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RevokeArtistAuthTokenHandler handles DELETE /api/artists/revoke.
func (h *ArtistHandler) RevokeArtistAuthTokenHandler(c *gin.Context) {
	artistID, ok := requireContextString(c, "artistID")
	if !ok {
		return
	}
	if err := h.ArtistService.Logout(artistID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session revoked"})
}

// GetArtistProfileHandler handles GET /api/artists/id/:id (public view).
func (h *ArtistHandler) GetArtistProfileHandler(c *gin.Context) {
	id := c.Param("id")
	dto, err := h.ArtistService.GetArtistProfile(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto)
}

// GetOwnArtistHandler handles GET /api/artists/me (full record).
func (h *ArtistHandler) GetOwnArtistHandler(c *gin.Context) {
	artistID, ok := requireContextString(c, "artistID")
	if !ok {
		return
	}
	a, err := h.ArtistService.GetArtist(artistID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}

// UpdateArtistHandler handles PATCH /api/artists/me.
func (h *ArtistHandler) UpdateArtistHandler(c *gin.Context) {
	artistID, ok := requireContextString(c, "artistID")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	a, err := h.ArtistService.UpdateArtist(artistID, updates)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}

// DeleteArtistHandler handles DELETE /api/artists/me.
func (h *ArtistHandler) DeleteArtistHandler(c *gin.Context) {
	artistID, ok := requireContextString(c, "artistID")
	if !ok {
		return
	}
	if err := h.ArtistService.DeleteArtist(artistID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Artist deleted"})
}

// ListArtistsHandler handles GET /api/artists.
func (h *ArtistHandler) ListArtistsHandler(c *gin.Context) {
	if style := c.Query("style"); style != "" {
		limit, _ := pagination(c)
		dtos, err := h.ArtistService.SearchByStyle(style, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"artists": dtos})
		return
	}

	dtos, err := h.ArtistService.ListArtists()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"artists": dtos})
}

// SetScheduleHandler handles PUT /api/artists/me/schedule.
func (h *ArtistHandler) SetScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()

	artistID, ok := requireContextString(c, "artistID")
	if !ok {
		return
	}

	var schedule models.AvailabilitySchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.ArtistService.SetSchedule(artistID, schedule); err != nil {
		logger.Warn("Schedule rejected", zap.String("artistID", artistID), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule updated"})
}

// AddPortfolioImageHandler handles POST /api/artists/me/portfolio. It accepts
// a multipart file upload under the "image" field.
func (h *ArtistHandler) AddPortfolioImageHandler(c *gin.Context) {
	logger := utils.GetLogger()

	artistID, ok := requireContextString(c, "artistID")
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file", "details": err.Error()})
		return
	}

	tmpPath := "/tmp/" + file.Filename
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		logger.Error("Failed to stage upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to stage upload"})
		return
	}

	url, err := h.ArtistService.AddPortfolioImage(c.Request.Context(), artistID, tmpPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// UpdateArtistFCMTokenHandler handles PUT /api/artists/me/fcm-token.
func (h *ArtistHandler) UpdateArtistFCMTokenHandler(c *gin.Context) {
	artistID, ok := requireContextString(c, "artistID")
	if !ok {
		return
	}

	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.ArtistService.UpdateFCMToken(artistID, input.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Push token updated"})
}
