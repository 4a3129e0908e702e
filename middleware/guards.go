package middleware

import (
	"net/http"

	"goleironow/models"

	"github.com/gin-gonic/gin"
)

// Route guards. Pure derivations over the session restored by
// SessionMiddleware; they own no state. Redirect targets mirror the app's
// navigation: unauthenticated requests point at the login screen and carry
// the originally requested path in "next" so the client can return there
// after logging in; authenticated requests of the wrong role point home.

func redirectToLogin(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":    "Authentication required",
		"redirect": "/login",
		"next":     c.Request.URL.RequestURI(),
	})
}

func redirectHome(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"error":    "Not available for this role",
		"redirect": "/",
	})
}

// AuthenticatedOnly admits any authenticated session.
func AuthenticatedOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) == nil {
			redirectToLogin(c)
			return
		}
		c.Next()
	}
}

// ClientOnly admits sessions acting as a client.
func ClientOnly() gin.HandlerFunc {
	return requireRole(models.RoleClient)
}

// GoalkeeperOnly admits sessions acting as a goalkeeper.
func GoalkeeperOnly() gin.HandlerFunc {
	return requireRole(models.RoleGoalkeeper)
}

func requireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil {
			redirectToLogin(c)
			return
		}
		if sess.Record.Role != role {
			redirectHome(c)
			return
		}
		c.Next()
	}
}
