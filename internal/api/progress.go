package api

import (
	"net/http" // HTTP status codes

	"fitness_tracker/internal/middleware" // Session user
	"fitness_tracker/internal/service"    // Business operations

	"github.com/gin-gonic/gin" // Gin web framework
)

// ProgressRequest is the progress update form
type ProgressRequest struct {
	Weight float64 `form:"weight" binding:"required"` // New weight in kg
	Notes  string  `form:"notes"`                     // Optional notes
}

// DashboardHandler shows BMI, recent progress and today's calories
func DashboardHandler(svc *service.FitnessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.User(c)
		dashboard, err := svc.Dashboard(c.Request.Context(), user)
		if err != nil {
			pageError(c, err)
			return
		}
		render(c, http.StatusOK, "dashboard.html", gin.H{
			"Title":     "Dashboard",
			"User":      user,
			"Dashboard": dashboard,
		})
	}
}

// UpdateProgressHandler records a new weight for the session user
func UpdateProgressHandler(svc *service.FitnessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProgressRequest // Bind form to struct
		if err := c.ShouldBind(&req); err != nil {
			errorResult(c, service.ErrInvalidInput, "/dashboard").Redirect(c)
			return
		}
		if _, err := svc.UpdateProgress(c.Request.Context(), middleware.UserID(c), req.Weight, req.Notes); err != nil {
			errorResult(c, err, "/dashboard").Redirect(c)
			return
		}
		Result{Status: http.StatusFound, Message: "Progress updated successfully!", Location: "/dashboard"}.Redirect(c)
	}
}

// ProgressDataHandler returns the weight history for the dashboard chart
func ProgressDataHandler(svc *service.FitnessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		series, err := svc.ProgressSeries(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			serverError(c, err, "Failed to load progress")
			return
		}
		c.JSON(http.StatusOK, series)
	}
}
