package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shelfshare/shelfshare-backend/internal/config"
	"github.com/shelfshare/shelfshare-backend/internal/utils"
)

const RoleAdmin = "admin"

// AuthMiddleware validates the bearer token minted by the external
// user-management service and stores its claims on the context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.SendAppError(c, utils.Unauthorized("Authorization header required"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.SendAppError(c, utils.Unauthorized("Bearer token required"))
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, cfg.JWTSecret)
		if err != nil {
			utils.SendAppError(c, utils.Unauthorized("Invalid token"))
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// EnsureCorrectUserOrAdmin checks that the authenticated caller is the
// subject user or an administrator. Handlers call it after binding the
// payload, since the subject username travels in the request body.
func EnsureCorrectUserOrAdmin(c *gin.Context, username string) error {
	if c.GetString("user_role") == RoleAdmin {
		return nil
	}
	if c.GetString("username") == username {
		return nil
	}
	return utils.Unauthorized("must be the subject user or an admin")
}
