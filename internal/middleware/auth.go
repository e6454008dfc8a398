package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"banglabet-backend/internal/models"
	"banglabet-backend/internal/services"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "session"

// AuthRequired resolves the current user from the session cookie (or a
// Bearer header as a fallback for non-browser clients). Auth state is
// re-derived on every request: the token must validate, the session must
// still be registered, and the user must still exist.
func AuthRequired(store *services.Store, sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, _ := c.Cookie(SessionCookie)
		if tokenString == "" {
			if authHeader := c.GetHeader("Authorization"); authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) == 2 && parts[0] == "Bearer" {
					tokenString = parts[1]
				}
			}
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := sessions.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			c.Abort()
			return
		}

		userID, ok := store.GetSession(claims.SessionID)
		if !ok || userID != claims.UserID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired or invalid"})
			c.Abort()
			return
		}

		user := store.GetUser(userID)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired or invalid"})
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("session_id", claims.SessionID)
		c.Set("user", user)

		c.Next()
	}
}

// AdminRequired must run after AuthRequired. It is a pure check: 403 when
// the session user is not an admin, no state is touched.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		user := v.(*models.User)
		if !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
