// Package endpoint provides standalone HTTP endpoints that do not depend on
// the interview pipeline.
package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/interview-coach/version"
)

// Status returns the liveness handler for GET /.
func Status(serviceName string) gin.HandlerFunc {
	info := version.Get()
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "Interview Feedback API is running!",
			"service": serviceName,
			"version": info.Version,
		})
	}
}
