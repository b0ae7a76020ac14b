package middleware

import (
	"errors"
	"net/http"

	"jobpilot-backend/internal/delivery/http/response"
	"jobpilot-backend/internal/domain"
	"jobpilot-backend/pkg/apperror"
	"jobpilot-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		switch {
		case errors.As(err, &appErr):
			response.Error(c, appErr.Code, appErr.Message, nil)
		case errors.Is(err, domain.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Resource not found", nil)
		default:
			// Never expose internal error details to clients; log the
			// real error server-side and send a generic message.
			logger.Log.Error("Internal server error", "error", err, "path", c.FullPath())
			response.Error(c, http.StatusInternalServerError,
				"An unexpected error occurred. Please try again later.", nil)
		}
	}
}
