package handlers

import (
	"net/http"

	"inkwell/services/user"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes client account endpoints.
type UserHandler struct {
	UserService user.UserService
}

// RegisterUserHandler handles POST /api/users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.UserService.Register(input)
	if err != nil {
		logger.Error("User registration failed", zap.String("email", input.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles POST /api/users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.UserService.Authenticate(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RevokeUserAuthTokenHandler handles DELETE /api/users/revoke.
func (h *UserHandler) RevokeUserAuthTokenHandler(c *gin.Context) {
	userID, ok := requireContextString(c, "userID")
	if !ok {
		return
	}
	if err := h.UserService.Logout(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session revoked"})
}

// GetUserHandler handles GET /api/users/me.
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	userID, ok := requireContextString(c, "userID")
	if !ok {
		return
	}
	usr, err := h.UserService.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateUserHandler handles PATCH /api/users/me.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	userID, ok := requireContextString(c, "userID")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	usr, err := h.UserService.UpdateUser(userID, updates)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// DeleteUserHandler handles DELETE /api/users/me.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, ok := requireContextString(c, "userID")
	if !ok {
		return
	}
	if err := h.UserService.DeleteUser(userID); err != nil {
		logger.Error("Delete error", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// UpdateUserFCMTokenHandler handles PUT /api/users/me/fcm-token.
func (h *UserHandler) UpdateUserFCMTokenHandler(c *gin.Context) {
	userID, ok := requireContextString(c, "userID")
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

	if err := h.UserService.UpdateFCMToken(userID, input.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Push token updated"})
}

// ListCreditHistoryHandler handles GET /api/users/me/credits.
func (h *UserHandler) ListCreditHistoryHandler(c *gin.Context) {
	userID, ok := requireContextString(c, "userID")
	if !ok {
		return
	}

	limit, after := pagination(c)
	items, err := h.UserService.ListCreditHistory(userID, limit, after)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": items})
}
