package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"fitness_tracker/internal/middleware" // Session helpers
	"fitness_tracker/internal/service"    // Sentinel errors

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

const (
	flashCookie = "flash"
	flashMaxAge = 60 // Seconds a flash message survives before it is read
)

// Result is the outcome of a form action: a status and message for the user,
// and where to send the browser next. An empty Location re-renders the page.
type Result struct {
	Status   int
	Message  string
	Location string
}

// Redirect sends the browser to Location, carrying Message to the next page
func (r Result) Redirect(c *gin.Context) {
	if r.Message != "" {
		setFlash(c, r.Message)
	}
	c.Redirect(http.StatusFound, r.Location)
}

// Render shows page with Message as an error banner
func (r Result) Render(c *gin.Context, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Error"] = r.Message
	render(c, r.Status, page, data)
}

// errorResult maps a service error to what the user sees. Unexpected errors
// are logged and shown as a generic failure.
func errorResult(c *gin.Context, err error, location string) Result {
	r := Result{Location: location}
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		r.Status, r.Message = http.StatusBadRequest, "Invalid input"
	case errors.Is(err, service.ErrEmailTaken):
		r.Status, r.Message = http.StatusConflict, "Email already registered"
	case errors.Is(err, service.ErrUsernameTaken):
		r.Status, r.Message = http.StatusConflict, "Username already taken"
	case errors.Is(err, service.ErrInvalidCredentials):
		r.Status, r.Message = http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, service.ErrUserNotFound):
		r.Status, r.Message = http.StatusNotFound, "User not found"
	case errors.Is(err, service.ErrExerciseNotFound):
		r.Status, r.Message = http.StatusNotFound, "Exercise not found"
	case errors.Is(err, service.ErrMealNotFound):
		r.Status, r.Message = http.StatusNotFound, "Meal not found"
	default:
		logrus.WithFields(logrus.Fields{
			"path":    c.Request.URL.Path,
			"user_id": middleware.UserID(c),
			"error":   err.Error(),
		}).Error("Request failed")
		r.Status, r.Message = http.StatusInternalServerError, "Something went wrong, please try again"
	}
	return r
}

// render executes a page template with the pending flash message and the
// session user, when there is one
func render(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flash"] = takeFlash(c)
	if _, ok := data["User"]; !ok {
		if user := middleware.User(c); user != nil {
			data["User"] = user
		}
	}
	c.HTML(status, page, data)
}

func setFlash(c *gin.Context, msg string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, msg, flashMaxAge, "/", "", false, true)
}

// takeFlash reads the flash message and expires it
func takeFlash(c *gin.Context) string {
	msg, err := c.Cookie(flashCookie)
	if err != nil || msg == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return msg
}

// serverError answers JSON callers when something unexpected failed
func serverError(c *gin.Context, err error, msg string) {
	logrus.WithFields(logrus.Fields{
		"path":    c.Request.URL.Path,
		"user_id": middleware.UserID(c),
		"error":   err.Error(),
	}).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// pageError renders the generic error page
func pageError(c *gin.Context, err error) {
	r := errorResult(c, err, "")
	r.Render(c, "error.html", gin.H{"Title": "Error"})
}
