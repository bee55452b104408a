package handlers

import (
	"net/http"

	"inkwell/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the notification inbox.
type NotificationHandler struct {
	NotificationService notification.NotificationService
}

// ListNotificationsHandler handles GET /api/notifications for either role.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	recipientID, ok := contextString(c, "userID")
	if !ok {
		recipientID, ok = contextString(c, "artistID")
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	limit, after := pagination(c)
	items, err := h.NotificationService.ListForRecipient(c.Request.Context(), recipientID, limit, after)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": items})
}

// MarkNotificationReadHandler handles PUT /api/notifications/:id/read.
func (h *NotificationHandler) MarkNotificationReadHandler(c *gin.Context) {
	if err := h.NotificationService.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked read"})
}
