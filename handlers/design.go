package handlers

import (
	"net/http"

	"inkwell/models"
	"inkwell/services/design"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DesignHandler exposes AI tattoo design endpoints.
type DesignHandler struct {
	DesignService design.DesignService
}

// GenerateDesignHandler handles POST /api/designs/generate.
func (h *DesignHandler) GenerateDesignHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, ok := requireContextString(c, "userID")
	if !ok {
		return
	}

	var req models.DesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	d, err := h.DesignService.GenerateDesign(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("Design generation failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, d)
}

// GetDesignHandler handles GET /api/designs/:id.
func (h *DesignHandler) GetDesignHandler(c *gin.Context) {
	d, err := h.DesignService.GetDesign(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, d)
}

// ListUserDesignsHandler handles GET /api/designs.
func (h *DesignHandler) ListUserDesignsHandler(c *gin.Context) {
	userID, ok := requireContextString(c, "userID")
	if !ok {
		return
	}

	limit, after := pagination(c)
	items, err := h.DesignService.ListUserDesigns(c.Request.Context(), userID, limit, after)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"designs": items})
}
