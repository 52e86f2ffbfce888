package middleware

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"car-api-go/internal/constants"
	"car-api-go/internal/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler renders the last error a handler attached to the context.
// Handlers never write error responses themselves.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *errors.AppError
		if !stderrors.As(err, &appErr) {
			appErr = errors.NewInternalError(err)
		}

		if appErr.StatusCode >= http.StatusInternalServerError {
			logger.Error(fmt.Sprintf("%s Request failed", constants.APIName()),
				zap.String("path", c.Request.URL.Path), zap.Error(err))
		} else {
			logger.Warn(fmt.Sprintf("%s Request rejected", constants.APIName()),
				zap.String("path", c.Request.URL.Path),
				zap.Int("status", appErr.StatusCode),
				zap.String("error", appErr.Message))
		}

		c.JSON(appErr.StatusCode, gin.H{
			"error":  appErr.Message,
			"status": appErr.StatusCode,
		})
	}
}
