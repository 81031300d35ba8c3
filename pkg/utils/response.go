package utils

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorResponse sends a JSON error body of the form {"error": message}
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"error": message,
	})
}

// ProbeResponse sends a probe status body stamped with the current UTC time.
// extra fields are merged into the body.
func ProbeResponse(c *gin.Context, statusCode int, status string, extra gin.H) {
	body := gin.H{
		"status":    status,
		"timestamp": Timestamp(time.Now()),
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// Timestamp formats t as an ISO 8601 UTC timestamp with microseconds.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000")
}
