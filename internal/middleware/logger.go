package middleware

import (
	"net/http"
	"time"

	"github.com/mrclaudee/quizz-app/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestID reuses an incoming X-Request-Id or generates one, and echoes it
// on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		line := "[%s] %s %s %s %d %v"
		args := []interface{}{
			c.GetString("request_id"),
			c.ClientIP(),
			c.Request.Method,
			c.Request.URL.RequestURI(),
			status,
			latency,
		}

		switch {
		case status >= 500:
			logger.Errorf(line, args...)
		case status >= 400:
			logger.Warnf(line, args...)
		default:
			logger.Infof(line, args...)
		}
	}
}

func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Errorf("[%s] panic serving %s %s: %v",
			c.GetString("request_id"), c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}
