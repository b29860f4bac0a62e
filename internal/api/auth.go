package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"fitness_tracker/internal/domain"     // Importing domain models
	"fitness_tracker/internal/middleware" // Session cookie helpers
	"fitness_tracker/internal/service"    // Business operations
	"fitness_tracker/internal/utils"      // Session token signer

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// RegisterRequest is the registration form
type RegisterRequest struct {
	Username string  `form:"username" binding:"required"` // Username must be provided
	Email    string  `form:"email" binding:"required"`    // Email must be provided
	Password string  `form:"password" binding:"required"` // Password must be provided
	Height   float64 `form:"height" binding:"required"`   // Height in cm
	Weight   float64 `form:"weight" binding:"required"`   // Weight in kg
	Goal     string  `form:"goal" binding:"required"`     // One of the domain goals
}

// LoginRequest is the login form
type LoginRequest struct {
	Email    string `form:"email" binding:"required"`    // Email must be provided
	Password string `form:"password" binding:"required"` // Password must be provided
}

var goals = []domain.Goal{domain.GoalLoseWeight, domain.GoalGainWeight, domain.GoalMaintainWeight}

// IndexHandler renders the landing page
func IndexHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, "index.html", gin.H{"Title": "Welcome"})
	}
}

// RegisterPageHandler renders the registration form
func RegisterPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, "register.html", registerData())
	}
}

func registerData() gin.H {
	return gin.H{"Title": "Register", "Goals": goals}
}

// RegisterHandler creates an account and sends the user to the login page
func RegisterHandler(svc *service.FitnessService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind form to struct
		if err := c.ShouldBind(&req); err != nil {
			// If binding fails, re-render the form
			errorResult(c, service.ErrInvalidInput, "").Render(c, "register.html", registerData())
			return
		}
		_, err := svc.Register(c.Request.Context(), service.RegisterInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
			Height:   req.Height,
			Weight:   req.Weight,
			Goal:     domain.Goal(req.Goal),
		})
		if err != nil {
			// Duplicate email or username, or invalid values
			errorResult(c, err, "").Render(c, "register.html", registerData())
			return
		}
		Result{Status: http.StatusFound, Message: "Registration successful! Please login.", Location: "/login"}.Redirect(c)
	}
}

// LoginPageHandler renders the login form
func LoginPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, "login.html", gin.H{"Title": "Login"})
	}
}

// LoginHandler checks credentials, starts a session and opens the dashboard
func LoginHandler(svc *service.FitnessService, signer *utils.SessionSigner, secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind form to struct
		if err := c.ShouldBind(&req); err != nil {
			errorResult(c, service.ErrInvalidInput, "").Render(c, "login.html", gin.H{"Title": "Login"})
			return
		}
		user, err := svc.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				logrus.WithFields(logrus.Fields{"client_ip": c.ClientIP()}).Warn("Failed login attempt")
			}
			errorResult(c, err, "").Render(c, "login.html", gin.H{"Title": "Login"})
			return
		}
		token, err := signer.Issue(user.ID, user.Username) // Generate session token
		if err != nil {
			errorResult(c, err, "").Render(c, "login.html", gin.H{"Title": "Login"})
			return
		}
		middleware.StartSession(c, token, signer.TTL(), secureCookies)
		logrus.WithFields(logrus.Fields{"user_id": user.ID}).Info("User logged in")
		c.Redirect(http.StatusFound, "/dashboard")
	}
}

// LogoutHandler clears the session and returns home
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.ClearSession(c)
		c.Redirect(http.StatusFound, "/")
	}
}
