package response

import (
	"github.com/gin-gonic/gin"
)

// The API contract uses flat bodies: errors carry a single human-readable
// message, successes carry the resource itself. Internal details never
// leave the server; they belong in logs.

// Error writes {"message": ...} with the given status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// AbortError writes {"message": ...} and stops the handler chain.
// Meant for middleware.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}
