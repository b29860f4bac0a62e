package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation
	"time"     // Cookie lifetimes

	"fitness_tracker/internal/utils" // Session token signer

	"github.com/gin-gonic/gin" // Gin web framework
)

const (
	// SessionCookie carries the signed session token
	SessionCookie = "session"

	userIDKey   = "userID"
	usernameKey = "username"
)

// Denial answers a request that failed authentication
type Denial func(c *gin.Context)

// RedirectToLogin sends browsers to the login page
func RedirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}

// JSONUnauthorized answers API callers with 401
func JSONUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
}

// SessionAuth validates the session token from the cookie or a Bearer header
// and stores the user id and username in the context. It never touches storage.
func SessionAuth(signer *utils.SessionSigner, deny Denial) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			deny(c)
			return
		}
		claims, err := signer.Parse(token)
		if err != nil {
			ClearSession(c)
			deny(c)
			return
		}
		c.Set(userIDKey, claims.UserID)     // Store userID in context
		c.Set(usernameKey, claims.Username) // Store username in context
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// StartSession writes the session cookie
func StartSession(c *gin.Context, token string, ttl time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(ttl.Seconds()), "/", "", secure, true)
}

// ClearSession expires the session cookie
func ClearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}

// UserID is the authenticated user's id, zero outside SessionAuth
func UserID(c *gin.Context) uint {
	return c.GetUint(userIDKey)
}

// Username is the authenticated user's name from the session token
func Username(c *gin.Context) string {
	return c.GetString(usernameKey)
}
