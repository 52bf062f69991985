package api

import "github.com/gin-gonic/gin"

// respondError sends a uniform error body and stops the handler chain.
func respondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
