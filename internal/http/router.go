package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wayfarer/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())
	if cfg.SecureCookies {
		router.Use(auth.StrictTransportSecurityMiddleware())
	}

	// CORS runs before CSRF so that preflight requests are answered
	if len(cfg.CORSAllowedOrigins) > 0 {
		router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	}

	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
		router.GET("/auth/csrf", auth.CSRFTokenHandler)
	}

	if cfg.Tokens != nil && cfg.Cookies != nil {
		router.Use(auth.SessionMiddleware(cfg.Tokens, cfg.Cookies))
	}

	healthController := NewHealthController(cfg.HealthChecks, cfg.Version)
	router.GET("/health", healthController.Health)
	router.GET("/ping", healthController.Ping)

	if cfg.AuthController != nil {
		cfg.AuthController.RegisterRoutes(router)
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = nopNotifier{}
	}

	destinationsController := NewDestinationsController(cfg.Destinations)
	router.GET("/destinations", destinationsController.List)
	router.GET("/destinations/:id", destinationsController.Get)

	bookingsController := NewBookingsController(cfg.Bookings, cfg.Destinations, notifier)
	router.POST("/bookings", bookingsController.Create)
	router.GET("/bookings", auth.RequireSession(), bookingsController.List)

	contactController := NewContactController(cfg.Contacts, notifier)
	router.POST("/contact", contactController.Create)

	if cfg.Seeder != nil {
		seedController := NewSeedController(cfg.Seeder, cfg.SeedCache)
		router.POST("/seed", seedController.Seed)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	config.AllowOrigins = origins
	config.AllowCredentials = true
	config.AllowHeaders = []string{
		"Origin",
		"Content-Type",
		"Accept",
		auth.CSRFTokenHeader,
	}
	// Single-page clients read the CSRF token from the response header
	config.ExposeHeaders = []string{auth.CSRFTokenHeader}
	return config
}
