package middleware

import (
	"github.com/gin-gonic/gin"

	"groq-scribe/internal/app/session"
)

// SessionCookie is the name of the cookie carrying the session id.
const SessionCookie = "scribe_session"

const sessionKey = "session"

// WithSession resolves the caller's session from the cookie, creating one on
// first contact, and makes it available to handlers.
func WithSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(SessionCookie)

		sess := store.GetOrCreate(id)
		if sess.ID != id {
			c.SetCookie(SessionCookie, sess.ID, 0, "/", "", false, true)
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// SessionFromContext returns the session attached by WithSession.
func SessionFromContext(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}
