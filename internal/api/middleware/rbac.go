package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marwaELABIDI/ferme-platform/internal/domain"
)

// RequireRole returns middleware that checks the authenticated account's
// role against an allow-list. ADMIN passes every check.
func RequireRole(allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := domain.Role(GetRole(c.Request.Context()))
		if !role.Valid() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code": "FORBIDDEN", "message": "no role in context",
			})
			return
		}

		if role == domain.RoleAdmin {
			c.Next()
			return
		}

		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"code": "FORBIDDEN", "message": "insufficient role",
		})
	}
}

// RequireAdmin is shorthand for endpoints restricted to administrators.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}
