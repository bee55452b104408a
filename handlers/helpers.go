package handlers

import (
	"net/http"
	"strconv"

	"inkwell/utils"

	"github.com/gin-gonic/gin"
)

// contextString pulls a string value set by auth middleware. The second
// return is false when the value is missing or not a string.
func contextString(c *gin.Context, key string) (string, bool) {
	v, ok := c.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

// requireContextString aborts with 401 when the auth middleware did not set
// the expected identity key.
func requireContextString(c *gin.Context, key string) (string, bool) {
	s, ok := contextString(c, key)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return "", false
	}
	return s, true
}

// pagination reads the limit and after query parameters.
func pagination(c *gin.Context) (int64, string) {
	limit := utils.DefaultPageSize
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 && n <= utils.MaxPageSize {
			limit = n
		}
	}
	return limit, c.Query("after")
}
