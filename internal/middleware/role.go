package middleware

import (
	"mini_store/internal/store" // Persistence backend
	"net/http"                  // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// RequireRoleMiddleware re-checks the user's role against the store on each
// request, so a stale token cannot keep privileges the record no longer has.
// The role must match the page being served exactly: admins cannot browse
// the storefront routes and users cannot reach the admin dashboard.
func RequireRoleMiddleware(st store.Store, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, exists := c.Get("username") // Get username from context
		// Check if username exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Fetch user from the store
		user, err := st.FindUserByUsername(c.Request.Context(), username.(string))
		if err != nil {
			// If user not found or any error, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		// Check if user role matches the required role
		if user.Role != role {
			// If not, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		// If the role matches, proceed to the next handler
		c.Next()
	}
}
