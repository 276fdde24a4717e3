package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"banhmai_back_end/internal/models"
)

// RequireAdmin gates the admin console routes on the role carried in the JWT.
func RequireAdmin(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || role != string(models.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin access only"})
		c.Abort()
		return
	}
	c.Next()
}
