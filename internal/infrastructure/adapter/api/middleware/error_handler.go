package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/gold-advisor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/gold-advisor/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-advisor/internal/infrastructure/adapter/api/dto"
)

// Recovery turns a panic inside a handler into a 500 response
func Recovery(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      fmt.Sprint(recovered),
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetHeader("X-Request-ID"),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrUnexpected),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}

// NotFound answers unknown routes with the standard error body
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrNotFound),
			Message: "Route not found: " + c.Request.Method + " " + c.Request.URL.Path,
		})
	}
}
