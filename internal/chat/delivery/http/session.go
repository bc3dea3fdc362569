package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "session_id"
	cookieMaxAge  = 30 * 60 // seconds, matches the store TTL
)

// sessionID reads the session cookie, minting one on the first visit
func sessionID(c *gin.Context) string {
	id, err := c.Cookie(sessionCookie)
	if err == nil && id != "" {
		return id
	}

	id = uuid.NewString()
	c.SetCookie(sessionCookie, id, cookieMaxAge, "/", "", false, true)
	return id
}
