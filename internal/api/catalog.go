package api

import (
	"fmt"      // Flash message formatting
	"net/http" // HTTP status codes

	"fitness_tracker/internal/middleware" // Session user
	"fitness_tracker/internal/service"    // Business operations

	"github.com/gin-gonic/gin" // Gin web framework
)

// LogExerciseRequest is the exercise log form
type LogExerciseRequest struct {
	ExerciseID uint `form:"exercise_id" binding:"required"` // Catalog exercise
	Duration   int  `form:"duration" binding:"required"`    // Minutes
}

// LogMealRequest is the meal log form
type LogMealRequest struct {
	MealID   uint    `form:"meal_id" binding:"required"`  // Catalog meal
	Quantity float64 `form:"quantity" binding:"required"` // Servings
}

// ExercisesHandler lists the exercise catalog grouped by category
func ExercisesHandler(svc *service.FitnessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		groups, err := svc.ExercisesByCategory(c.Request.Context())
		if err != nil {
			pageError(c, err)
			return
		}
		render(c, http.StatusOK, "exercises.html", gin.H{"Title": "Exercises", "Groups": groups})
	}
}

// LogExerciseHandler records an exercise for today
func LogExerciseHandler(svc *service.FitnessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LogExerciseRequest // Bind form to struct
		if err := c.ShouldBind(&req); err != nil {
			errorResult(c, service.ErrInvalidInput, "/exercises").Redirect(c)
			return
		}
		logged, err := svc.LogExercise(c.Request.Context(), middleware.UserID(c), req.ExerciseID, req.Duration)
		if err != nil {
			errorResult(c, err, "/exercises").Redirect(c)
			return
		}
		Result{
			Status:   http.StatusFound,
			Message:  fmt.Sprintf("Logged %s for %d minutes!", logged.Exercise.Name, logged.Log.Duration),
			Location: "/exercises",
		}.Redirect(c)
	}
}

// YogaHandler lists the yoga poses
func YogaHandler(svc *service.FitnessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		poses, err := svc.YogaPoses(c.Request.Context())
		if err != nil {
			pageError(c, err)
			return
		}
		render(c, http.StatusOK, "yoga.html", gin.H{"Title": "Yoga", "Poses": poses})
	}
}

// DietHandler lists the meal catalog grouped by category next to the user's goal
func DietHandler(svc *service.FitnessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		groups, err := svc.MealsByCategory(c.Request.Context())
		if err != nil {
			pageError(c, err)
			return
		}
		render(c, http.StatusOK, "diet.html", gin.H{
			"Title":  "Diet",
			"User":   middleware.User(c),
			"Groups": groups,
		})
	}
}

// LogMealHandler records a meal for today
func LogMealHandler(svc *service.FitnessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LogMealRequest // Bind form to struct
		if err := c.ShouldBind(&req); err != nil {
			errorResult(c, service.ErrInvalidInput, "/diet").Redirect(c)
			return
		}
		logged, err := svc.LogMeal(c.Request.Context(), middleware.UserID(c), req.MealID, req.Quantity)
		if err != nil {
			errorResult(c, err, "/diet").Redirect(c)
			return
		}
		Result{Status: http.StatusFound, Message: fmt.Sprintf("Logged %s!", logged.Meal.Name), Location: "/diet"}.Redirect(c)
	}
}
