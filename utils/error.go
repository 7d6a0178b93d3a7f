package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// HandleErrors is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error:  "Internal Server Error",
					Detail: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError aborts with a standardized JSON error response. For client errors
// err is echoed as the detail; server errors are logged and err stays private.
func JSONError(c *gin.Context, status int, message string, err error) {
	Logger := GetLogger()
	fields := []zap.Field{zap.Int("status", status), zap.String("path", c.FullPath())}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}

	resp := ErrorResponse{Error: message}
	if status >= http.StatusInternalServerError {
		Logger.Error(message, fields...)
	} else {
		Logger.Debug(message, fields...)
		if err != nil {
			resp.Detail = err.Error()
		}
	}
	c.AbortWithStatusJSON(status, resp)
}
