package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/shelfshare/shelfshare-backend/internal/utils"
	"github.com/shelfshare/shelfshare-backend/pkg/logger"
)

// ErrorHandler is the single translator from errors pushed by
// handlers to HTTP responses. Handlers never write error bodies
// themselves; they attach the error and return.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		logger.WithFields(map[string]interface{}{
			"request_id": c.GetString("request_id"),
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
		}).Warn(err.Error())

		utils.SendAppError(c, err)
	}
}
