package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/portfolio-backend/internal/session"
)

const UserIDKey = "userID"

// RequireAuth rejects requests that do not carry a valid session cookie.
// On success the resolved user id is stored in the gin context. A session
// store outage is a persistence failure, not a missing session, and is
// reported as 500.
func RequireAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(session.CookieName)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		userID, err := sessions.Resolve(c.Request.Context(), cookie)
		if errors.Is(err, session.ErrInvalid) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session lookup failed"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
