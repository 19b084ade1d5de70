package http

import (
	"github.com/mrlokans/wayfarer/internal/auth"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Authentication
	AuthController *auth.AuthController
	Tokens         auth.TokenVerifier
	Cookies        *auth.CookieAdapter
	SecureCookies  bool

	// CSRF protection, enabled when the secret is set
	CSRFSecret []byte

	// Cross-origin frontends allowed to call the API with credentials
	CORSAllowedOrigins []string

	// Catalogue and bookings
	Destinations DestinationReader
	Bookings     BookingStore
	Contacts     ContactStore
	Notifier     Notifier // optional

	// Seeding, the route is mounted only when Seeder is set
	Seeder       Seeder
	SeedCache    CacheInvalidator // optional
	HealthChecks map[string]Pinger

	// Application info
	Version string
}
