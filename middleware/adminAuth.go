package middleware

import (
	userRepo "inkwell/database/repository/user"
	"inkwell/models"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware restricts a route group to admin accounts.
func JWTAuthAdminMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}

		subject, rawRole, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || subject == "" {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}
		role, err := models.ParseRole(rawRole)
		if err != nil || role != models.RoleAdmin {
			abortUnauthorized(c, "Admin access required")
			return
		}

		ok := verifySession(subject, utils.HashToken(tokenString), func(id string) (string, error) {
			u, err := users.GetByID(id)
			if err != nil || u == nil {
				return "", err
			}
			return u.TokenHash, nil
		})
		if !ok {
			abortUnauthorized(c, "Token mismatch")
			return
		}

		c.Set("userID", subject)
		c.Set("role", string(role))
		c.Next()
	}
}
