package middleware

import (
	"net/http"
	"strings"

	userRepo "carpool/database/repository/user"
	"carpool/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token and binds the requesting
// user's ID into the context. The token hash must still match the account
// record, so a revoked token fails even before expiry.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)

		// Auth cache first, repo as fallback.
		ctx := c.Request.Context()
		if userID, err := utils.GetAuthCacheClient().Get(ctx, computedHash).Result(); err == nil && userID != "" {
			c.Set("userID", userID)
			c.Next()
			return
		}

		usr, err := users.GetByTokenHash(ctx, computedHash)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or user not found"})
			return
		}

		c.Set("userID", usr.ID)
		c.Next()
	}
}
