package middleware

import (
	"log/slog"
	"net/http"

	"equipment-rental/internal/handler/httperr"
	"equipment-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const maxStackLines = 8

// ErrorHandler logs server errors with a short stack and writes the public
// response for handlers that recorded an error without writing one.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() >= http.StatusInternalServerError {
			for _, e := range c.Errors {
				logger.Error("Request failed",
					slog.String("request_id", GetRequestID(c)),
					slog.String("path", c.Request.URL.Path),
					slog.String("error", e.Err.Error()),
					slog.Any("stack", errs.ExtractStackLines(e.Err, maxStackLines)))
			}
		}

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
		}
	}
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
