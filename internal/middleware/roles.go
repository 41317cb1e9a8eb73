package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayvista_server/internal/storage"
)

// RequireRole permits the request only when the persisted role of the
// authenticated user equals role. The role is re-read from the store on
// every request rather than trusted from the token, so an admin demotion
// or a host approval takes effect on the next call without reissuing the
// cookie. Must run after RequireAuth.
func RequireRole(store *storage.Store, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		user, err := store.FindUserByEmail(email)
		if err != nil || user.Role != role {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		c.Next()
	}
}
