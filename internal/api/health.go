package api

import (
	"net/http" // HTTP status codes

	"fitness_tracker/internal/service" // Database ping

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// HealthHandler reports whether the database answers
func HealthHandler(svc *service.FitnessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Ping(c.Request.Context()); err != nil {
			logrus.WithFields(logrus.Fields{"error": err.Error()}).Error("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
