package middleware

import (
	"strings"

	"goleironow/services/session"

	"github.com/gin-gonic/gin"
)

const (
	// SessionContextKey is where the restored session lives in the gin context.
	SessionContextKey = "session"
	// SessionTokenContextKey holds the raw bearer token for logout.
	SessionTokenContextKey = "sessionToken"
)

// SessionMiddleware restores the session behind the request's bearer token
// and stashes it in the context. It never aborts: public routes work without
// a session, and the guards downstream decide what an absent session means.
// Because restoration happens here, every guarded handler runs against a
// fully resolved session, never a half-restored one.
func SessionMiddleware(svc session.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if sess := svc.Restore(token); sess != nil {
				c.Set(SessionContextKey, sess)
				c.Set(SessionTokenContextKey, token)
			}
		}
		c.Next()
	}
}

// CurrentSession returns the restored session, or nil when unauthenticated.
func CurrentSession(c *gin.Context) *session.Session {
	val, exists := c.Get(SessionContextKey)
	if !exists {
		return nil
	}
	sess, ok := val.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}

// CurrentToken returns the raw bearer token of the restored session.
func CurrentToken(c *gin.Context) string {
	val, exists := c.Get(SessionTokenContextKey)
	if !exists {
		return ""
	}
	token, _ := val.(string)
	return token
}
