package api

import (
	"time" // CORS preflight cache

	"fitness_tracker/internal/middleware" // Auth gate and request logging
	"fitness_tracker/internal/service"    // Business operations
	"fitness_tracker/internal/utils"      // Session token signer

	"github.com/gin-contrib/cors" // CORS for the JSON endpoints
	"github.com/gin-gonic/gin"    // Gin web framework
)

// Deps is what the HTTP layer needs from the rest of the application
type Deps struct {
	Service       *service.FitnessService
	Signer        *utils.SessionSigner
	SecureCookies bool     // Mark cookies Secure, set in production behind TLS
	CORSOrigins   []string // Empty disables CORS
}

// NewRouter registers every route on a fresh gin engine
func NewRouter(d Deps) (*gin.Engine, error) {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		return nil, err
	}
	if len(d.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	r.SetHTMLTemplate(Templates())

	// Public routes
	r.GET("/", IndexHandler())
	r.GET("/register", RegisterPageHandler())
	r.POST("/register", RegisterHandler(d.Service))
	r.GET("/login", LoginPageHandler())
	r.POST("/login", LoginHandler(d.Service, d.Signer, d.SecureCookies))
	r.GET("/logout", LogoutHandler())
	r.GET("/healthz", HealthHandler(d.Service))

	// Page routes redirect to the login page without a valid session
	pages := r.Group("/")
	pages.Use(
		middleware.SessionAuth(d.Signer, middleware.RedirectToLogin),
		middleware.CurrentUser(d.Service, middleware.RedirectToLogin),
	)
	pages.GET("/dashboard", DashboardHandler(d.Service))
	pages.POST("/update_progress", UpdateProgressHandler(d.Service))
	pages.GET("/exercises", ExercisesHandler(d.Service))
	pages.POST("/log_exercise", LogExerciseHandler(d.Service))
	pages.GET("/yoga", YogaHandler(d.Service))
	pages.GET("/diet", DietHandler(d.Service))
	pages.POST("/log_meal", LogMealHandler(d.Service))
	pages.GET("/chatbot", ChatbotHandler())

	// JSON routes answer 401 instead
	apiGroup := r.Group("/")
	apiGroup.Use(
		middleware.SessionAuth(d.Signer, middleware.JSONUnauthorized),
		middleware.CurrentUser(d.Service, middleware.JSONUnauthorized),
	)
	apiGroup.POST("/chat", ChatHandler())
	apiGroup.GET("/progress_data", ProgressDataHandler(d.Service))

	return r, nil
}
