package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "session_id"
	sessionCtxKey = "session_id"
)

// SessionMiddleware guarantees every request carries a session ID, issuing a
// new cookie when the browser has none.
func SessionMiddleware(maxAge int) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, sid, maxAge, "/", "", false, true)
		}
		c.Set(sessionCtxKey, sid)
		c.Next()
	}
}

// SessionID returns the request's session identifier.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionCtxKey)
}
