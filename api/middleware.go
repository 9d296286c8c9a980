package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizdesk/internal/auth"
)

const (
	sessionCookie = "session"

	ctxUsername = "username"
	ctxRole     = "role"
)

// RequireAuth validates the session cookie and binds (username, role) to
// the request context. Unauthenticated callers are sent to the login page.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(sessionCookie)
		if err != nil || tokenString == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			// Stale or tampered cookie: drop it and start over.
			c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(ctxUsername, claims.Username)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin rejects non-admin sessions before the handler runs, so a
// gated mutation can never touch state. The message matches the action.
func RequireAdmin(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentRole(c) != auth.RoleAdmin {
			setFlash(c, "danger", message)
			c.Redirect(http.StatusFound, "/inventory")
			c.Abort()
		}
	}
}

func currentRole(c *gin.Context) auth.Role {
	role, _ := c.MustGet(ctxRole).(auth.Role)
	return role
}

func currentUsername(c *gin.Context) string {
	name, _ := c.MustGet(ctxUsername).(string)
	return name
}
