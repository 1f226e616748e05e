package middleware

import (
	"net/http"
	"strings"

	"storefront/utils"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Fail(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			utils.Fail(c, http.StatusUnauthorized, "Invalid authorization header format", nil)
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(secret, tokenParts[1])
		if err != nil {
			utils.Fail(c, http.StatusUnauthorized, "Invalid or expired token", err)
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		utils.SetIdentity(c, claims.Identity())
		c.Next()
	}
}

// AdminMiddleware admits staff only and must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := utils.CurrentIdentity(c)
		if !ok {
			utils.Fail(c, http.StatusForbidden, "User role not found", nil)
			c.Abort()
			return
		}

		if !identity.IsStaff {
			utils.Fail(c, http.StatusForbidden, "Access denied. Admin role required", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
