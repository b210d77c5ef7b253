package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emreyalim/stayhub-backend/internal/auth"
	"github.com/emreyalim/stayhub-backend/internal/user"
)

// RequireHost ensures the authenticated user is a host. The role travels in
// the JWT so no user lookup is needed. It MUST be used after
// auth.AuthRequired middleware.
func RequireHost() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := auth.GetUserRole(c)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if role != string(user.RoleHost) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: host access required"})
			return
		}

		c.Next()
	}
}
