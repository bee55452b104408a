package handlers

import (
	"net/http"

	"inkwell/services/shop"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShopHandler exposes the merch catalogue and order endpoints.
type ShopHandler struct {
	ShopService shop.ShopService
}

// CreateProductHandler handles POST /api/shop/products (admin).
func (h *ShopHandler) CreateProductHandler(c *gin.Context) {
	var input shop.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	p, err := h.ShopService.CreateProduct(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdateProductHandler handles PUT /api/shop/products/:id (admin).
func (h *ShopHandler) UpdateProductHandler(c *gin.Context) {
	var input shop.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	p, err := h.ShopService.UpdateProduct(c.Param("id"), input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProductHandler handles DELETE /api/shop/products/:id (admin).
func (h *ShopHandler) DeleteProductHandler(c *gin.Context) {
	if err := h.ShopService.DeleteProduct(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// GetProductHandler handles GET /api/shop/products/:id (public).
func (h *ShopHandler) GetProductHandler(c *gin.Context) {
	p, err := h.ShopService.GetProduct(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListProductsHandler handles GET /api/shop/products (public).
func (h *ShopHandler) ListProductsHandler(c *gin.Context) {
	limit, after := pagination(c)
	items, err := h.ShopService.ListProducts(limit, after)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": items})
}

// PlaceOrderHandler handles POST /api/shop/orders.
func (h *ShopHandler) PlaceOrderHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, ok := requireContextString(c, "userID")
	if !ok {
		return
	}

	var input shop.PlaceOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	order, err := h.ShopService.PlaceOrder(c.Request.Context(), userID, input)
	if err != nil {
		logger.Warn("Order failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ListUserOrdersHandler handles GET /api/shop/orders.
func (h *ShopHandler) ListUserOrdersHandler(c *gin.Context) {
	userID, ok := requireContextString(c, "userID")
	if !ok {
		return
	}

	limit, after := pagination(c)
	items, err := h.ShopService.ListUserOrders(userID, limit, after)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": items})
}
