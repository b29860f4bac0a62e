package middleware

import (
	"context"  // Request context for lookups
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"fitness_tracker/internal/domain"  // Importing domain models
	"fitness_tracker/internal/service" // Sentinel errors

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

const userKey = "user"

// UserLoader resolves a user id to the stored user
type UserLoader interface {
	User(ctx context.Context, id uint) (*domain.User, error)
}

// CurrentUser loads the user behind the session on each request. A session
// whose user no longer exists is cleared and denied.
func CurrentUser(users UserLoader, deny Denial) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := UserID(c) // Get userID from context
		if userID == 0 {
			deny(c)
			return
		}
		user, err := users.User(c.Request.Context(), userID)
		if errors.Is(err, service.ErrUserNotFound) {
			logrus.WithFields(logrus.Fields{"user_id": userID}).Warn("Session for missing user")
			ClearSession(c)
			deny(c)
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("Failed to load session user")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// User is the user loaded by CurrentUser, nil outside it
func User(c *gin.Context) *domain.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}
