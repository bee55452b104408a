package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	artistRepo "inkwell/database/repository/artist"
	userRepo "inkwell/database/repository/user"
	"inkwell/models"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": msg,
		"code":  0,
	})
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// verifySession compares the token hash against the auth cache, falling back
// to the persisted hash when the cache misses. storedHash loads the hash from
// the database for the subject.
func verifySession(subject, computedHash string, storedHash func(string) (string, error)) bool {
	ctx := context.Background()
	cacheKey := utils.AuthCachePrefix + subject

	authCache := utils.GetAuthCacheClient()
	cacheEnabled := authCache != nil
	if !cacheEnabled {
		log.Printf("WARNING: Auth cache client not available. Falling back to DB lookup.")
	}

	if cacheEnabled {
		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash == computedHash {
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				return true
			}
			return false
		} else if err != redis.Nil {
			log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to DB lookup.", err)
		}
	}

	// Cache miss: consult the persisted hash.
	hash, err := storedHash(subject)
	if err != nil || hash == "" || hash != computedHash {
		return false
	}

	if cacheEnabled {
		_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
	}
	return true
}

// JWTAuthUserMiddleware authenticates client accounts and sets "userID".
func JWTAuthUserMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

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
		if err != nil || (role != models.RoleClient && role != models.RoleAdmin) {
			abortUnauthorized(c, "Insufficient authorization")
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

// JWTAuthAnyMiddleware authenticates either account kind. It sets "userID"
// for client and admin tokens and "artistID" for artist tokens, so handlers
// can still insist on a specific role.
func JWTAuthAnyMiddleware(users userRepo.UserRepository, artists artistRepo.ArtistRepository) gin.HandlerFunc {
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
		if err != nil {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}

		computedHash := utils.HashToken(tokenString)
		var ok bool
		switch role {
		case models.RoleArtist:
			ok = verifySession(subject, computedHash, func(id string) (string, error) {
				a, err := artists.GetByID(id)
				if err != nil || a == nil {
					return "", err
				}
				return a.TokenHash, nil
			})
		case models.RoleClient, models.RoleAdmin:
			ok = verifySession(subject, computedHash, func(id string) (string, error) {
				u, err := users.GetByID(id)
				if err != nil || u == nil {
					return "", err
				}
				return u.TokenHash, nil
			})
		}
		if !ok {
			abortUnauthorized(c, "Token mismatch")
			return
		}

		if role == models.RoleArtist {
			c.Set("artistID", subject)
		} else {
			c.Set("userID", subject)
		}
		c.Set("role", string(role))
		c.Next()
	}
}

// JWTAuthArtistMiddleware authenticates artist accounts and sets "artistID".
func JWTAuthArtistMiddleware(artists artistRepo.ArtistRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

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
		if err != nil || (role != models.RoleArtist && role != models.RoleAdmin) {
			abortUnauthorized(c, "Insufficient authorization")
			return
		}

		ok := verifySession(subject, utils.HashToken(tokenString), func(id string) (string, error) {
			a, err := artists.GetByID(id)
			if err != nil || a == nil {
				return "", err
			}
			return a.TokenHash, nil
		})
		if !ok {
			abortUnauthorized(c, "Token mismatch")
			return
		}

		c.Set("artistID", subject)
		c.Set("role", string(role))
		c.Next()
	}
}
