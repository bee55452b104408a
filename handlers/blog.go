package handlers

import (
	"net/http"

	"inkwell/services/blog"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BlogHandler exposes studio blog endpoints.
type BlogHandler struct {
	BlogService blog.BlogService
}

// CreatePostHandler handles POST /api/blog (admin).
func (h *BlogHandler) CreatePostHandler(c *gin.Context) {
	authorID, ok := requireContextString(c, "userID")
	if !ok {
		return
	}

	var input blog.CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	post, err := h.BlogService.CreatePost(authorID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, post)
}

// GeneratePostHandler handles POST /api/blog/generate (admin).
func (h *BlogHandler) GeneratePostHandler(c *gin.Context) {
	logger := utils.GetLogger()

	authorID, ok := requireContextString(c, "userID")
	if !ok {
		return
	}

	var input struct {
		Topic string   `json:"topic" binding:"required"`
		Tags  []string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	post, err := h.BlogService.GeneratePost(c.Request.Context(), authorID, input.Topic, input.Tags)
	if err != nil {
		logger.Error("Blog generation failed", zap.String("topic", input.Topic), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, post)
}

// GetPostHandler handles GET /api/blog/:id (public).
func (h *BlogHandler) GetPostHandler(c *gin.Context) {
	post, err := h.BlogService.GetPost(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

// UpdatePostHandler handles PUT /api/blog/:id (admin).
func (h *BlogHandler) UpdatePostHandler(c *gin.Context) {
	var input blog.CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	post, err := h.BlogService.UpdatePost(c.Param("id"), input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePostHandler handles DELETE /api/blog/:id (admin).
func (h *BlogHandler) DeletePostHandler(c *gin.Context) {
	if err := h.BlogService.DeletePost(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// ListPostsHandler handles GET /api/blog (public).
func (h *BlogHandler) ListPostsHandler(c *gin.Context) {
	limit, after := pagination(c)
	posts, err := h.BlogService.ListPosts(limit, after)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
